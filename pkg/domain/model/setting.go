package model

// Setting 表示存储在数据库里的一条站点配置。
type Setting struct {
	ID        uint
	ConfigKey string
	Value     string
	Comment   string
}
