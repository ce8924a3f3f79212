package tpt_test

import (
	"fmt"
	"strings"
	"testing"

	"tptgen/internal/catalog"
	"tptgen/internal/tpt"

	"github.com/brianvoe/gofakeit/v6"
)

func testContext() tpt.Context {
	return tpt.Context{
		Database:          "SALES",
		Host:              "tdprod",
		User:              "exporter",
		Password:          "secret",
		LogonMech:         "LDAP",
		RestartWaitPeriod: "600",
		Delimiter:         "|",
	}
}

func TestRenderTwoColumnTable(t *testing.T) {
	cols := []catalog.Column{
		{Name: "ID", TypeCode: "I"},
		{Name: "NAME", TypeCode: "CV", Length: 50},
	}

	script, err := tpt.Render("orders", cols, testContext())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if n := strings.Count(script, "DEFINE SCHEMA"); n != 1 {
		t.Errorf("Expected exactly one DEFINE SCHEMA block, got %d", n)
	}
	if !strings.Contains(script, "DEFINE SCHEMA ORDERS_SCHEMA") {
		t.Errorf("Missing schema name:\n%s", script)
	}
	if !strings.Contains(script, "INTEGER ID,") {
		t.Errorf("Missing INTEGER line for ID:\n%s", script)
	}
	if !strings.Contains(script, "VARCHAR NAME(50)") {
		t.Errorf("Missing VARCHAR line for NAME:\n%s", script)
	}
	if strings.Contains(script, "VARCHAR NAME(50),") {
		t.Errorf("Final schema line must not end with a comma:\n%s", script)
	}
	if !strings.Contains(script, "VARCHAR SelectStmt = 'SELECT * FROM SALES.orders;'") {
		t.Errorf("Missing SelectStmt attribute:\n%s", script)
	}
	if !strings.Contains(script, "VARCHAR TdpId = 'tdprod'") ||
		!strings.Contains(script, "VARCHAR UserName = 'exporter'") ||
		!strings.Contains(script, "VARCHAR UserPassword = 'secret'") ||
		!strings.Contains(script, "VARCHAR LogonMech = 'LDAP'") {
		t.Errorf("Missing connection attributes:\n%s", script)
	}
	if !strings.Contains(script, "INTEGER Tpt_RestartWaitPeriod = 600") {
		t.Errorf("Missing restart wait period:\n%s", script)
	}
	if !strings.Contains(script, "VARCHAR TextDelimiter = '|'") {
		t.Errorf("Missing delimiter attribute:\n%s", script)
	}
	if !strings.Contains(script, "VARCHAR FileName = 'orders.dat'") {
		t.Errorf("Missing file name attribute:\n%s", script)
	}

	// Byte-stable across repeated renders
	again, err := tpt.Render("orders", cols, testContext())
	if err != nil {
		t.Fatalf("Second Render failed: %v", err)
	}
	if script != again {
		t.Errorf("Render is not byte-stable across identical inputs")
	}
}

func TestRenderNoColumns(t *testing.T) {
	if _, err := tpt.Render("orders", nil, testContext()); err == nil {
		t.Fatal("Expected error for empty column list")
	}
}

func TestSchemaLinesCountAndOrder(t *testing.T) {
	gofakeit.Seed(11)

	codes := []string{"CV", "CF", "I", "I1", "I2", "I8", "D", "F", "DA", "TS"}
	var cols []catalog.Column
	for i := 0; i < 25; i++ {
		cols = append(cols, catalog.Column{
			Name:     fmt.Sprintf("%s_%02d", strings.ToUpper(gofakeit.Word()), i),
			TypeCode: codes[gofakeit.Number(0, len(codes)-1)],
			Length:   gofakeit.Number(1, 255),
		})
	}

	lines := tpt.SchemaLines(cols)
	if len(lines) != len(cols) {
		t.Fatalf("Expected %d schema lines, got %d", len(cols), len(lines))
	}

	for i, line := range lines {
		if !strings.Contains(line, cols[i].Name) {
			t.Errorf("Line %d does not reference column %s: %q", i, cols[i].Name, line)
		}
		if i < len(lines)-1 && !strings.HasSuffix(line, ",") {
			t.Errorf("Non-final line %d must end with a comma: %q", i, line)
		}
		if i == len(lines)-1 && strings.HasSuffix(line, ",") {
			t.Errorf("Final line must not end with a comma: %q", line)
		}
	}
}

func TestSchemaLinesUnknownTypeFallback(t *testing.T) {
	cols := []catalog.Column{
		{Name: "ID", TypeCode: "I"},
		{Name: "PAYLOAD", TypeCode: "JN", Length: 2000},
	}

	lines := tpt.SchemaLines(cols)
	if len(lines) != 2 {
		t.Fatalf("Expected 2 lines, got %d", len(lines))
	}

	last := lines[1]
	if !strings.HasPrefix(last, "VARCHAR PAYLOAD(2000)") {
		t.Errorf("Unknown code must fall back to VARCHAR with declared length: %q", last)
	}
	if !strings.Contains(last, "unrecognized type code JN") {
		t.Errorf("Missing fallback marker: %q", last)
	}
	if strings.HasSuffix(last, ",") {
		t.Errorf("Final line must not end with a comma: %q", last)
	}
}

func TestDelimiterChangesOnlyTextDelimiter(t *testing.T) {
	cols := []catalog.Column{
		{Name: "ID", TypeCode: "I"},
		{Name: "NAME", TypeCode: "CV", Length: 50},
	}

	a, err := tpt.Render("orders", cols, testContext())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	ctx := testContext()
	ctx.Delimiter = ";"
	b, err := tpt.Render("orders", cols, ctx)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	aLines := strings.Split(a, "\n")
	bLines := strings.Split(b, "\n")
	if len(aLines) != len(bLines) {
		t.Fatalf("Line count changed: %d vs %d", len(aLines), len(bLines))
	}

	diff := 0
	var changed string
	for i := range aLines {
		if aLines[i] != bLines[i] {
			diff++
			changed = bLines[i]
		}
	}
	if diff != 1 {
		t.Fatalf("Expected exactly 1 differing line, got %d", diff)
	}
	if !strings.Contains(changed, "TextDelimiter") {
		t.Errorf("Changed line is not the TextDelimiter attribute: %q", changed)
	}
}
