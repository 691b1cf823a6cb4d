package repository

import "errors"

// 核心错误类型。仓储和解析器只返回类型化错误，不打日志、不拼用户文案，
// 由 api 层翻译成状态码。
var (
	// ErrValidation 入参缺失或格式非法，未触达存储层
	ErrValidation = errors.New("invalid or missing input")
	// ErrNotFound 查询合法但没有匹配行
	ErrNotFound = errors.New("no matching record found")
	// ErrConflict 自然键唯一约束冲突（含解析器并发插入竞态）
	ErrConflict = errors.New("record already exists")
	// ErrDuplicateFixture 同主客队同日期时间的赛事已存在
	ErrDuplicateFixture = errors.New("fixture already scheduled")
	// ErrInvalidFixture 主客队解析为同一支球队
	ErrInvalidFixture = errors.New("a team cannot play against itself")
)
