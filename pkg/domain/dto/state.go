package dto

import "github.com/google/uuid"

// StateDTO 是州参考数据的传输对象。
type StateDTO struct {
	Entity[uuid.UUID]

	Name         string `json:"name" binding:"required,max=20"`
	Abbreviation string `json:"abbreviation" binding:"required,len=2"`
}
