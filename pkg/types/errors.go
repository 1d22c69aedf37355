package types

import "errors"

// ============================================================================
//                              ID 相关错误
// ============================================================================

var (
	// ErrEmptyNodeID 空节点 ID
	ErrEmptyNodeID = errors.New("empty node ID")

	// ErrInvalidNodeID 无效的节点 ID
	ErrInvalidNodeID = errors.New("invalid node ID: must be 32 bytes in hex or Base58")
)
