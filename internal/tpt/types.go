package tpt

// typeKeywords maps native DBC type codes to TPT schema keywords. The codes
// are what DBC.ColumnsV reports in ColumnType.
var typeKeywords = map[string]string{
	"CV": "VARCHAR", // VARCHAR
	"CF": "VARCHAR", // CHAR, exported as variable-length text
	"I":  "INTEGER",
	"I1": "INTEGER", // BYTEINT
	"I2": "INTEGER", // SMALLINT
	"I8": "INTEGER", // BIGINT
	"D":  "DECIMAL",
	"F":  "FLOAT",
	"DA": "DATE",
	"TS": "TIMESTAMP",
	"SZ": "TIMESTAMP", // TIMESTAMP WITH TIME ZONE
	"TZ": "TIMESTAMP", // TIME WITH TIME ZONE
}

// FallbackKeyword is used for any type code outside the mapping table. The
// schema stays syntactically complete and the consumer receives the raw value
// as text.
const FallbackKeyword = "VARCHAR"

// Keyword resolves a native type code to its TPT schema keyword. The second
// return reports whether the code was recognized; unrecognized codes degrade
// to FallbackKeyword and are never an error.
func Keyword(typeCode string) (string, bool) {
	if kw, ok := typeKeywords[typeCode]; ok {
		return kw, true
	}
	return FallbackKeyword, false
}

// carriesLength reports whether the declared length belongs in the schema
// line. Only the textual codes carry it; the numeric and temporal keywords
// are self-sizing.
func carriesLength(typeCode string) bool {
	return typeCode == "CV" || typeCode == "CF"
}
