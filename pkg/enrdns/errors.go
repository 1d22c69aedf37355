package enrdns

import "errors"

var (
	// ErrNotTXT 资源记录不是 TXT 类型
	ErrNotTXT = errors.New("enrdns: resource record is not TXT")

	// ErrEmptyRecord 区域文件行中没有资源记录
	ErrEmptyRecord = errors.New("enrdns: no resource record")
)
