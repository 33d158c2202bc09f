package repositories

// Bound parameters cover user-supplied values, but table and column names
// can never be parameters. Any dynamic identifier must therefore come from
// these fixed sets before it is spliced into a statement.

var allowedColumns = map[string]map[string]bool{
	"users": {
		"id":          true,
		"email":       true,
		"username":    true,
		"is_active":   true,
		"is_verified": true,
		"created_at":  true,
	},
	"wallets": {
		"id":         true,
		"user_id":    true,
		"currency":   true,
		"balance":    true,
		"created_at": true,
	},
	"transactions": {
		"id":         true,
		"user_id":    true,
		"amount":     true,
		"status":     true,
		"created_at": true,
	},
}

// AllowedTable reports whether table is a queryable entity table.
func AllowedTable(table string) bool {
	_, ok := allowedColumns[table]
	return ok
}

// AllowedColumn reports whether column may be used as a dynamic identifier
// (sort key, update target) for the given table.
func AllowedColumn(table, column string) bool {
	cols, ok := allowedColumns[table]
	return ok && cols[column]
}
