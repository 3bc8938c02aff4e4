package model

import "github.com/google/uuid"

// State 表示美国的一个州（参考数据）。
type State struct {
	Entity[uuid.UUID]

	Name         string
	Abbreviation string
}
