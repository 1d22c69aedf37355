package crypto

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"
	"testing"
)

// EIP-778 示例记录使用的私钥
const testSecp256k1Key = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

func TestSecp256k1_Generate(t *testing.T) {
	priv, pub, err := GenerateSecp256k1Key(rand.Reader)
	if err != nil {
		t.Fatalf("GenerateSecp256k1Key() error = %v", err)
	}

	if priv.Type() != KeyTypeSecp256k1 {
		t.Errorf("PrivateKey.Type() = %v, want %v", priv.Type(), KeyTypeSecp256k1)
	}
	if pub.Type() != KeyTypeSecp256k1 {
		t.Errorf("PublicKey.Type() = %v, want %v", pub.Type(), KeyTypeSecp256k1)
	}

	privRaw, _ := priv.Raw()
	if len(privRaw) != Secp256k1PrivateKeySize {
		t.Errorf("PrivateKey.Raw() len = %d, want %d", len(privRaw), Secp256k1PrivateKeySize)
	}

	pubRaw, _ := pub.Raw()
	if len(pubRaw) != Secp256k1PublicKeySize {
		t.Errorf("PublicKey.Raw() len = %d, want %d", len(pubRaw), Secp256k1PublicKeySize)
	}
}

func TestSecp256k1_KnownPublicKey(t *testing.T) {
	raw, _ := hex.DecodeString(testSecp256k1Key)
	priv, err := UnmarshalSecp256k1PrivateKey(raw)
	if err != nil {
		t.Fatalf("UnmarshalSecp256k1PrivateKey() error = %v", err)
	}

	pubRaw, _ := priv.GetPublic().Raw()
	want := "03ca634cae0d49acb401d8a4c6b6fe8c55b70d115bf400769cc1400f3258cd3138"
	if got := hex.EncodeToString(pubRaw); got != want {
		t.Errorf("GetPublic().Raw() = %s, want %s", got, want)
	}
}

func TestSecp256k1_SignVerify(t *testing.T) {
	priv, pub, _ := GenerateSecp256k1Key(rand.Reader)
	data := []byte("test message for secp256k1")

	sig, err := priv.Sign(data)
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}
	if len(sig) != Secp256k1SignatureSize {
		t.Errorf("Sign() len = %d, want %d", len(sig), Secp256k1SignatureSize)
	}

	// RFC6979：相同输入得到相同签名
	sig2, _ := priv.Sign(data)
	if !bytes.Equal(sig, sig2) {
		t.Error("Sign() is not deterministic")
	}

	valid, err := pub.Verify(data, sig)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if !valid {
		t.Error("Verify() = false, want true")
	}

	// 验证错误数据
	valid, _ = pub.Verify([]byte("wrong message"), sig)
	if valid {
		t.Error("Verify(badData) = true, want false")
	}

	// 验证短签名
	valid, _ = pub.Verify(data, []byte{1, 2, 3})
	if valid {
		t.Error("Verify(shortSig) = true, want false")
	}

	// 全零签名
	valid, _ = pub.Verify(data, make([]byte, Secp256k1SignatureSize))
	if valid {
		t.Error("Verify(zeroSig) = true, want false")
	}
}

func TestSecp256k1_RejectsHighS(t *testing.T) {
	priv, pub, _ := GenerateSecp256k1Key(rand.Reader)
	data := []byte("malleability")
	sig, _ := priv.Sign(data)

	// s' = N - s 对应同一签名的可延展形式
	n, _ := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	highS := subBigEndian(n, sig[32:])

	forged := append(append([]byte{}, sig[:32]...), highS...)
	valid, _ := pub.Verify(data, forged)
	if valid {
		t.Error("Verify(highS) = true, want false")
	}
}

func TestSecp256k1_Equals(t *testing.T) {
	priv1, pub1, _ := GenerateSecp256k1Key(rand.Reader)
	priv2, pub2, _ := GenerateSecp256k1Key(rand.Reader)

	if !priv1.Equals(priv1) {
		t.Error("priv1.Equals(priv1) = false")
	}
	if !pub1.Equals(pub1) {
		t.Error("pub1.Equals(pub1) = false")
	}
	if priv1.Equals(priv2) {
		t.Error("priv1.Equals(priv2) = true")
	}
	if pub1.Equals(pub2) {
		t.Error("pub1.Equals(pub2) = true")
	}
}

func TestSecp256k1_UnmarshalPublicKey(t *testing.T) {
	_, pub, _ := GenerateSecp256k1Key(rand.Reader)

	t.Run("compressed", func(t *testing.T) {
		raw, _ := pub.Raw()
		pub2, err := UnmarshalSecp256k1PublicKey(raw)
		if err != nil {
			t.Fatalf("UnmarshalSecp256k1PublicKey() error = %v", err)
		}
		if !pub.Equals(pub2) {
			t.Error("Unmarshalled key does not equal original")
		}
	})

	t.Run("uncompressed", func(t *testing.T) {
		raw := pub.(*Secp256k1PublicKey).RawUncompressed()
		if len(raw) != Secp256k1UncompressedPublicKeySize || raw[0] != 0x04 {
			t.Fatalf("RawUncompressed() = %x", raw)
		}
		pub2, err := UnmarshalSecp256k1PublicKey(raw)
		if err != nil {
			t.Fatalf("UnmarshalSecp256k1PublicKey() error = %v", err)
		}
		if !pub.Equals(pub2) {
			t.Error("Unmarshalled key does not equal original")
		}
	})

	t.Run("not on curve", func(t *testing.T) {
		raw, _ := pub.Raw()
		raw[0] = 0x05
		if _, err := UnmarshalSecp256k1PublicKey(raw); err == nil {
			t.Error("UnmarshalSecp256k1PublicKey(bad prefix) should return error")
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		if _, err := UnmarshalSecp256k1PublicKey([]byte{1, 2, 3}); err == nil {
			t.Error("UnmarshalSecp256k1PublicKey(invalidSize) should return error")
		}
	})
}

func TestSecp256k1_UnmarshalPrivateKey_OutOfRange(t *testing.T) {
	if _, err := UnmarshalSecp256k1PrivateKey(make([]byte, 32)); err != ErrInvalidPrivateKey {
		t.Errorf("UnmarshalSecp256k1PrivateKey(zero) error = %v, want ErrInvalidPrivateKey", err)
	}
	if _, err := UnmarshalSecp256k1PrivateKey(bytes.Repeat([]byte{0xff}, 32)); err != ErrInvalidPrivateKey {
		t.Errorf("UnmarshalSecp256k1PrivateKey(>=N) error = %v, want ErrInvalidPrivateKey", err)
	}
}

func TestSecp256k1_Zero(t *testing.T) {
	priv, _, _ := GenerateSecp256k1Key(rand.Reader)
	priv.Zero()

	if _, err := priv.Sign([]byte("x")); err != ErrKeyZeroed {
		t.Errorf("Sign() after Zero error = %v, want ErrKeyZeroed", err)
	}
	if _, err := priv.Raw(); err != ErrKeyZeroed {
		t.Errorf("Raw() after Zero error = %v, want ErrKeyZeroed", err)
	}
	// 重复调用安全
	priv.Zero()
}

// subBigEndian 计算 a - b（定长大端，a >= b）
func subBigEndian(a, b []byte) []byte {
	out := make([]byte, len(a))
	borrow := 0
	for i := len(a) - 1; i >= 0; i-- {
		d := int(a[i]) - int(b[i]) - borrow
		borrow = 0
		if d < 0 {
			d += 256
			borrow = 1
		}
		out[i] = byte(d)
	}
	return out
}
