package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/crypto/argon2"

	"github.com/dep2p/go-enr/internal/util/logger"
)

var log = logger.Logger("keystore")

// ============================================================================
//                              密钥文件格式
// ============================================================================

// 密钥文件格式：
//
//   ┌────────────────────────────────────────────────────────────┐
//   │                    密钥文件                                 │
//   ├────────────────────────────────────────────────────────────┤
//   │  Magic:     "ENR-KEY"  (7 bytes)                           │
//   │  Version:   uint8                                           │
//   │  Type:      uint8 (KeyType)                                │
//   │  Encrypted: uint8 (0=否, 1=是)                              │
//   │  Data:      密钥数据或加密数据                               │
//   └────────────────────────────────────────────────────────────┘
//
//   加密数据格式：
//   ┌────────────────────────────────────────────────────────────┐
//   │  Salt:       16 bytes                                       │
//   │  Nonce:      12 bytes                                       │
//   │  Ciphertext: 变长（AES-GCM 加密）                           │
//   └────────────────────────────────────────────────────────────┘
//
//   头部（Magic..Encrypted）同时作为 AES-GCM 的附加认证数据。

const (
	keyFileMagic   = "ENR-KEY"
	keyFileVersion = 1
	keyFileExt     = ".key"

	// 加密参数
	saltSize  = 16
	nonceSize = 12

	// Argon2 参数
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
)

// ============================================================================
//                              Keystore 接口
// ============================================================================

// Keystore 密钥存储接口
type Keystore interface {
	// Has 检查是否存在指定名称的密钥
	Has(name string) (bool, error)

	// Put 存储密钥
	Put(name string, key PrivateKey) error

	// Get 获取密钥，调用者负责在用完后调用 Zero
	Get(name string) (PrivateKey, error)

	// Delete 删除密钥
	Delete(name string) error

	// List 列出所有密钥名称（按字典序）
	List() ([]string, error)
}

// ============================================================================
//                              文件系统密钥存储
// ============================================================================

// FSKeystore 基于文件系统的密钥存储
type FSKeystore struct {
	dir      string
	password []byte // 可选：用于加密存储
}

var _ Keystore = (*FSKeystore)(nil)

// NewFSKeystore 创建文件系统密钥存储
//
// 参数：
//   - dir: 存储目录
//   - password: 加密密码（为空则明文存储）
func NewFSKeystore(dir string, password []byte) (*FSKeystore, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	pw := make([]byte, len(password))
	copy(pw, password)
	return &FSKeystore{
		dir:      dir,
		password: pw,
	}, nil
}

// Dir 返回存储目录
func (ks *FSKeystore) Dir() string {
	return ks.dir
}

// Has 检查是否存在指定名称的密钥
func (ks *FSKeystore) Has(name string) (bool, error) {
	path, err := ks.keyPath(name)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	return err == nil, err
}

// Put 存储密钥
func (ks *FSKeystore) Put(name string, key PrivateKey) error {
	if key == nil {
		return ErrNilPrivateKey
	}
	exists, err := ks.Has(name)
	if err != nil {
		return err
	}
	if exists {
		return ErrKeyExists
	}

	data, err := ks.encodeKey(key)
	if err != nil {
		return err
	}

	path, _ := ks.keyPath(name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}
	log.Info("key stored", "name", name, "type", key.Type().String(), "encrypted", len(ks.password) > 0)
	return nil
}

// Get 获取密钥
func (ks *FSKeystore) Get(name string) (PrivateKey, error) {
	path, err := ks.keyPath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // G304: 路径由 keyPath 校验
	if os.IsNotExist(err) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	defer Zero(data)

	return ks.decodeKey(data)
}

// Delete 删除密钥
func (ks *FSKeystore) Delete(name string) error {
	path, err := ks.keyPath(name)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return ErrKeyNotFound
	}
	if err == nil {
		log.Info("key deleted", "name", name)
	}
	return err
}

// List 列出所有密钥名称
func (ks *FSKeystore) List() ([]string, error) {
	entries, err := os.ReadDir(ks.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == keyFileExt {
			names = append(names, strings.TrimSuffix(entry.Name(), keyFileExt))
		}
	}
	sort.Strings(names)
	return names, nil
}

// keyPath 返回密钥文件路径
//
// 名称不能为空，也不能包含路径分隔符。
func (ks *FSKeystore) keyPath(name string) (string, error) {
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKeyName, name)
	}
	return filepath.Join(ks.dir, name+keyFileExt), nil
}

// encodeKey 编码密钥（可选加密）
func (ks *FSKeystore) encodeKey(key PrivateKey) ([]byte, error) {
	raw, err := key.Raw()
	if err != nil {
		return nil, err
	}
	defer Zero(raw)

	var buf bytes.Buffer
	buf.WriteString(keyFileMagic)
	buf.WriteByte(keyFileVersion)
	buf.WriteByte(byte(key.Type()))

	if len(ks.password) == 0 {
		buf.WriteByte(0)
		buf.Write(raw)
		return buf.Bytes(), nil
	}

	buf.WriteByte(1)
	encrypted, err := encryptData(raw, ks.password, buf.Bytes())
	if err != nil {
		return nil, err
	}
	buf.Write(encrypted)
	return buf.Bytes(), nil
}

// decodeKey 解码密钥
func (ks *FSKeystore) decodeKey(data []byte) (PrivateKey, error) {
	headerLen := len(keyFileMagic) + 3
	if len(data) < headerLen {
		return nil, ErrInvalidKeyFile
	}
	if string(data[:len(keyFileMagic)]) != keyFileMagic {
		return nil, ErrInvalidKeyFile
	}

	offset := len(keyFileMagic)
	if version := data[offset]; version != keyFileVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidKeyFile, version)
	}
	keyType := KeyType(data[offset+1])
	encrypted := data[offset+2] == 1
	keyData := data[headerLen:]

	if !encrypted {
		return UnmarshalPrivateKey(keyType, keyData)
	}
	if len(ks.password) == 0 {
		return nil, ErrInvalidPassword
	}
	plain, err := decryptData(keyData, ks.password, data[:headerLen])
	if err != nil {
		return nil, err
	}
	return UnmarshalPrivateKeyZeroing(keyType, plain)
}

// ============================================================================
//                              加密辅助函数
// ============================================================================

// encryptData 使用 AES-GCM 加密数据
func encryptData(plaintext, password, ad []byte) ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	// 组装结果：salt || nonce || ciphertext
	out := make([]byte, 0, saltSize+nonceSize+len(plaintext)+gcm.Overhead())
	out = append(out, salt...)
	out = append(out, nonce...)
	return gcm.Seal(out, nonce, plaintext, ad), nil
}

// decryptData 使用 AES-GCM 解密数据
func decryptData(data, password, ad []byte) ([]byte, error) {
	if len(data) < saltSize+nonceSize {
		return nil, ErrDecryptionFailed
	}

	salt := data[:saltSize]
	nonce := data[saltSize : saltSize+nonceSize]
	ciphertext := data[saltSize+nonceSize:]

	gcm, err := newGCM(password, salt)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, ad)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(password, salt []byte) (cipher.AEAD, error) {
	key := DeriveKey(password, salt)
	defer Zero(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// DeriveKey 从密码派生 32 字节加密密钥（Argon2id）
func DeriveKey(password, salt []byte) []byte {
	return argon2.IDKey(password, salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
}

// ============================================================================
//                              内存密钥存储
// ============================================================================

// MemKeystore 内存密钥存储（用于测试）
//
// 存入与取出的都是副本，避免调用者清零时影响存储内容。
type MemKeystore struct {
	mu   sync.RWMutex
	keys map[string]PrivateKey
}

var _ Keystore = (*MemKeystore)(nil)

// NewMemKeystore 创建内存密钥存储
func NewMemKeystore() *MemKeystore {
	return &MemKeystore{
		keys: make(map[string]PrivateKey),
	}
}

// Has 检查是否存在指定名称的密钥
func (ks *MemKeystore) Has(name string) (bool, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	_, ok := ks.keys[name]
	return ok, nil
}

// Put 存储密钥
func (ks *MemKeystore) Put(name string, key PrivateKey) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	if _, ok := ks.keys[name]; ok {
		return ErrKeyExists
	}
	clone, err := ClonePrivateKey(key)
	if err != nil {
		return err
	}
	ks.keys[name] = clone
	return nil
}

// Get 获取密钥
func (ks *MemKeystore) Get(name string) (PrivateKey, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	key, ok := ks.keys[name]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return ClonePrivateKey(key)
}

// Delete 删除密钥
func (ks *MemKeystore) Delete(name string) error {
	ks.mu.Lock()
	defer ks.mu.Unlock()
	key, ok := ks.keys[name]
	if !ok {
		return ErrKeyNotFound
	}
	key.Zero()
	delete(ks.keys, name)
	return nil
}

// List 列出所有密钥名称
func (ks *MemKeystore) List() ([]string, error) {
	ks.mu.RLock()
	defer ks.mu.RUnlock()
	names := make([]string, 0, len(ks.keys))
	for name := range ks.keys {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
