package ansi

// reservedKeywords and unreservedKeywords are transcribed, two-table, the
// way the upstream dialect keeps them: a single flat set would silently
// change which bare words are legal as naked identifiers, since only
// reserved words are excluded from NakedIdentifierSegment's anti-template.
// This list is representative of core ANSI SQL rather than an exhaustive
// transcription of every dialect-specific keyword.
var reservedKeywords = []string{
	"ALL", "AND", "ANY", "AS", "ASC", "BETWEEN", "BY", "CASE", "CAST",
	"CHECK", "COLLATE", "COLUMN", "CONSTRAINT", "CREATE", "CROSS",
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER",
	"DATABASE", "DEFAULT", "DELETE", "DESC", "DISTINCT", "DROP", "ELSE",
	"END", "EXCEPT", "EXISTS", "FALSE", "FETCH", "FOR", "FOREIGN", "FROM",
	"FULL", "GRANT", "GROUP", "HAVING", "IN", "INDEX", "INNER", "INSERT",
	"INTERSECT", "INTO", "IS", "JOIN", "LEFT", "LIKE", "LIMIT", "MERGE",
	"NATURAL", "NOT", "NULL", "ON", "OR", "ORDER", "OUTER", "PRIMARY",
	"REFERENCES", "RIGHT", "ROLE", "ROLLBACK", "SCHEMA", "SELECT", "SET",
	"TABLE", "THEN", "TO", "TRANSACTION", "TRIGGER", "TRUE", "TRUNCATE",
	"UNION", "UNIQUE", "UPDATE", "USER", "USING", "VALUES", "VIEW", "WHEN",
	"WHERE", "WITH",
}

var unreservedKeywords = []string{
	"ASCII", "AT", "BIGINT", "BINARY", "BLOB", "BOOLEAN", "CASCADE",
	"CHAR", "CHARACTER", "COMMIT", "COMMENT", "CURRENT", "DATE",
	"DATETIME", "DAY", "DECIMAL", "DOUBLE", "FIRST", "FLOAT", "FUNCTION",
	"HOUR", "INT", "INTEGER", "INTERVAL", "KEY", "LANGUAGE", "LAST",
	"MATCH", "MINUTE", "MODEL", "MONTH", "NAN", "NO", "NUMERIC", "OBJECT",
	"OFFSET", "ONLY", "OVER", "PARTITION", "PRECISION", "READ", "RENAME",
	"REPLACE", "RETURNING", "ROW", "ROWS", "SECOND", "SEQUENCE", "SMALLINT",
	"START", "STRUCT", "TEMPORARY", "TEXT", "TIME", "TIMESTAMP", "TINYINT",
	"TYPE", "VARCHAR", "VARYING", "WINDOW", "WITHIN", "WRITE", "YEAR",
	"ZONE",
}

var bareFunctions = []string{
	"CURRENT_DATE", "CURRENT_TIME", "CURRENT_TIMESTAMP", "CURRENT_USER",
}

var datetimeUnits = []string{
	"YEAR", "MONTH", "DAY", "HOUR", "MINUTE", "SECOND",
}

var datePartFunctionNames = []string{
	"DATEADD", "DATEDIFF", "DATE_PART", "EXTRACT",
}

var valueTableFunctions = []string{
	"UNNEST",
}
