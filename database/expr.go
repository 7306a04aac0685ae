package database

import "gorm.io/gorm"

// YearMonthExpr returns the SQL expression that truncates the given date
// column to its YYYY-MM bucket on the active dialect.
func YearMonthExpr(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "postgres" {
		return "to_char(" + column + ", 'YYYY-MM')"
	}
	return "strftime('%Y-%m', " + column + ")"
}

// DateExpr returns the SQL expression that reduces the given column (or
// expression) to a plain date on the active dialect, so YYYY-MM-DD bounds
// compare inclusively.
func DateExpr(db *gorm.DB, column string) string {
	if db.Dialector.Name() == "postgres" {
		return "(" + column + ")::date"
	}
	return "date(" + column + ")"
}
