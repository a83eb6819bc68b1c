package repository

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

const likeEscapeChar = `\`

var likeEscaper = strings.NewReplacer(
	likeEscapeChar, likeEscapeChar+likeEscapeChar,
	"%", likeEscapeChar+"%",
	"_", likeEscapeChar+"_",
)

// dbDialectName 获取数据库方言名称，默认按 sqlite 处理。
func dbDialectName(db *gorm.DB) string {
	if db == nil || db.Dialector == nil {
		return "sqlite"
	}
	name := strings.ToLower(strings.TrimSpace(db.Dialector.Name()))
	if name == "" {
		return "sqlite"
	}
	return name
}

// buildContainsCondition 构建多列不区分大小写的子串匹配条件，并返回参数数量。
func buildContainsCondition(db *gorm.DB, columns []string) (string, int) {
	return buildContainsConditionByDialect(dbDialectName(db), columns)
}

func buildContainsConditionByDialect(dialect string, columns []string) (string, int) {
	parts := make([]string, 0, len(columns))
	operator := likeOperatorByDialect(dialect)
	for _, column := range columns {
		trimmed := strings.TrimSpace(column)
		if trimmed == "" {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s %s ? ESCAPE '%s'", trimmed, operator, likeEscapeChar))
	}
	return strings.Join(parts, " OR "), len(parts)
}

// sqlite 的 LIKE 对 ASCII 默认不区分大小写
func likeOperatorByDialect(dialect string) string {
	switch strings.ToLower(strings.TrimSpace(dialect)) {
	case "postgres", "postgresql":
		return "ILIKE"
	default:
		return "LIKE"
	}
}

// containsPattern 将搜索词转为转义后的 %term% 模式。
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// repeatLikeArgs 生成重复的 LIKE 参数列表。
func repeatLikeArgs(like string, count int) []interface{} {
	args := make([]interface{}, 0, count)
	for i := 0; i < count; i++ {
		args = append(args, like)
	}
	return args
}
