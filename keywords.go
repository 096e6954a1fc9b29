package main

import "github.com/c-bata/go-prompt"

// esqlKeywords is the static completion vocabulary: ES|QL commands,
// operators, and function names. Matched case-insensitively against the
// word under the cursor.
var esqlKeywords = []prompt.Suggest{
	// Commands
	{Text: "FROM", Description: "Command"},
	{Text: "WHERE", Description: "Command"},
	{Text: "LIMIT", Description: "Command"},
	{Text: "GROUP BY", Description: "Command"},
	{Text: "HAVING", Description: "Command"},
	{Text: "ORDER BY", Description: "Command"},
	{Text: "ASC", Description: "Command"},
	{Text: "DESC", Description: "Command"},
	{Text: "SELECT", Description: "Command"},
	{Text: "AS", Description: "Command"},
	{Text: "ROW", Description: "Command"},
	{Text: "ENRICH", Description: "Command"},
	{Text: "DROP", Description: "Command"},
	{Text: "KEEP", Description: "Command"},
	{Text: "MV_EXPAND", Description: "Command"},
	{Text: "SORT", Description: "Command"},
	{Text: "SUBSTRING", Description: "Command"},
	{Text: "GROK", Description: "Command"},
	{Text: "DISSECT", Description: "Command"},
	{Text: "EVAL", Description: "Command"},
	{Text: "LOOKUP", Description: "Command"},
	{Text: "METADATA", Description: "Command"},
	{Text: "STATS", Description: "Command"},

	// Logical operators
	{Text: "AND", Description: "Logical operator"},
	{Text: "OR", Description: "Logical operator"},
	{Text: "NOT", Description: "Logical operator"},

	// Comparison operators
	{Text: "BETWEEN", Description: "Comparison operator"},
	{Text: "IN", Description: "Comparison operator"},
	{Text: "IS NULL", Description: "Comparison operator"},
	{Text: "IS NOT NULL", Description: "Comparison operator"},
	{Text: "LIKE", Description: "Comparison operator"},
	{Text: "RLIKE", Description: "Comparison operator"},

	// Aggregate functions
	{Text: "AVG", Description: "Aggregate function"},
	{Text: "COUNT", Description: "Aggregate function"},
	{Text: "SUM", Description: "Aggregate function"},
	{Text: "MIN", Description: "Aggregate function"},
	{Text: "MAX", Description: "Aggregate function"},
	{Text: "COUNT_DISTINCT", Description: "Aggregate function"},
	{Text: "FIRST", Description: "Aggregate function"},
	{Text: "LAST", Description: "Aggregate function"},
	{Text: "KURTOSIS", Description: "Aggregate function"},
	{Text: "MAD", Description: "Aggregate function"},
	{Text: "PERCENTILE", Description: "Aggregate function"},
	{Text: "PERCENTILE_RANK", Description: "Aggregate function"},
	{Text: "SKEWNESS", Description: "Aggregate function"},
	{Text: "STDDEV_POP", Description: "Aggregate function"},
	{Text: "SUM_OF_SQUARES", Description: "Aggregate function"},
	{Text: "VAR_POP", Description: "Aggregate function"},
	{Text: "VAR_SAMP", Description: "Aggregate function"},

	// Grouping functions
	{Text: "BUCKET", Description: "Grouping function"},
	{Text: "CATEGORIZE", Description: "Grouping function"},
	{Text: "HISTOGRAM", Description: "Grouping function"},

	// Conditional functions
	{Text: "CASE", Description: "Conditional function"},
	{Text: "COALESCE", Description: "Conditional function"},
	{Text: "GREATEST", Description: "Conditional function"},
	{Text: "LEAST", Description: "Conditional function"},

	// Date/time functions
	{Text: "DATE_DIFF", Description: "Date/time function"},
	{Text: "DATE_EXTRACT", Description: "Date/time function"},
	{Text: "DATE_FORMAT", Description: "Date/time function"},
	{Text: "DATE_PARSE", Description: "Date/time function"},
	{Text: "DATE_TRUNC", Description: "Date/time function"},
	{Text: "NOW", Description: "Date/time function"},

	// IP functions
	{Text: "CIDR_MATCH", Description: "IP function"},
	{Text: "IP_PREFIX", Description: "IP function"},

	// Math functions
	{Text: "ABS", Description: "Math function"},
	{Text: "ACOS", Description: "Math function"},
	{Text: "ASIN", Description: "Math function"},
	{Text: "ATAN", Description: "Math function"},
	{Text: "ATAN2", Description: "Math function"},
	{Text: "CBRT", Description: "Math function"},
	{Text: "CEIL", Description: "Math function"},
	{Text: "COS", Description: "Math function"},
	{Text: "COSH", Description: "Math function"},
	{Text: "DEGREES", Description: "Math function"},
	{Text: "E", Description: "Math function"},
	{Text: "EXP", Description: "Math function"},
	{Text: "EXPM1", Description: "Math function"},
	{Text: "FLOOR", Description: "Math function"},
	{Text: "LOG", Description: "Math function"},
	{Text: "LOG10", Description: "Math function"},
	{Text: "PI", Description: "Math function"},
	{Text: "POWER", Description: "Math function"},
	{Text: "RADIANS", Description: "Math function"},
	{Text: "RANDOM", Description: "Math function"},
	{Text: "ROUND", Description: "Math function"},
	{Text: "SIGN", Description: "Math function"},
	{Text: "SIN", Description: "Math function"},
	{Text: "SINH", Description: "Math function"},
	{Text: "SQRT", Description: "Math function"},
	{Text: "TAN", Description: "Math function"},
	{Text: "TANH", Description: "Math function"},

	// String functions
	{Text: "ASCII", Description: "String function"},
	{Text: "BASE64_DECODE", Description: "String function"},
	{Text: "BASE64_ENCODE", Description: "String function"},
	{Text: "CONCAT", Description: "String function"},
	{Text: "INSERT", Description: "String function"},
	{Text: "LCASE", Description: "String function"},
	{Text: "LEFT", Description: "String function"},
	{Text: "LENGTH", Description: "String function"},
	{Text: "LOCATE", Description: "String function"},
	{Text: "LTRIM", Description: "String function"},
	{Text: "OCTET_LENGTH", Description: "String function"},
	{Text: "POSITION", Description: "String function"},
	{Text: "REGEX_EXTRACT", Description: "String function"},
	{Text: "REGEX_REPLACE", Description: "String function"},
	{Text: "REPEAT", Description: "String function"},
	{Text: "REPLACE", Description: "String function"},
	{Text: "REVERSE", Description: "String function"},
	{Text: "RIGHT", Description: "String function"},
	{Text: "RTRIM", Description: "String function"},
	{Text: "SPACE", Description: "String function"},
	{Text: "SUBSTR", Description: "String function"},
	{Text: "TRIM", Description: "String function"},
	{Text: "UCASE", Description: "String function"},

	// Type conversion functions
	{Text: "TO_BOOLEAN", Description: "Type conversion"},
	{Text: "TO_CARTESIANPOINT", Description: "Type conversion"},
	{Text: "TO_CARTESIANSHAPE", Description: "Type conversion"},
	{Text: "TO_DATEPERIOD", Description: "Type conversion"},
	{Text: "TO_DATETIME", Description: "Type conversion"},
	{Text: "TO_DATE_NANOS", Description: "Type conversion"},
	{Text: "TO_DEGREES", Description: "Type conversion"},
	{Text: "TO_DOUBLE", Description: "Type conversion"},
	{Text: "TO_GEOPOINT", Description: "Type conversion"},
	{Text: "TO_GEOSHAPE", Description: "Type conversion"},
	{Text: "TO_INTEGER", Description: "Type conversion"},
	{Text: "TO_IP", Description: "Type conversion"},
	{Text: "TO_LONG", Description: "Type conversion"},
	{Text: "TO_RADIANS", Description: "Type conversion"},
	{Text: "TO_STRING", Description: "Type conversion"},
	{Text: "TO_TIMEDURATION", Description: "Type conversion"},
	{Text: "TO_UNSIGNED_LONG", Description: "Type conversion"},
	{Text: "TO_VERSION", Description: "Type conversion"},

	// Search functions
	{Text: "KQL", Description: "Search function"},
	{Text: "MATCH", Description: "Search function"},
	{Text: "QSTR", Description: "Search function"},

	// Spatial functions
	{Text: "ST_DISTANCE", Description: "Spatial function"},
	{Text: "ST_INTERSECTS", Description: "Spatial function"},
	{Text: "ST_DISJOINT", Description: "Spatial function"},
	{Text: "ST_CONTAINS", Description: "Spatial function"},
	{Text: "ST_WITHIN", Description: "Spatial function"},
}
