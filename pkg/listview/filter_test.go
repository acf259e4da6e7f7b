package listview

import "testing"

type fixtureDoc struct {
	ID          string
	Name        string
	Type        string
	Description string
	Size        int64
}

// 21 documents, 5 of them invoices, mirroring the seed data used by the
// documents screen.
func fixtureDocs() []fixtureDoc {
	return []fixtureDoc{
		{ID: "doc-001", Name: "Invoice_2024_001.pdf", Type: "pdf", Description: "Monthly invoice for January"},
		{ID: "doc-002", Name: "Contract_Supplier_Alpha.pdf", Type: "pdf", Description: "Framework agreement"},
		{ID: "doc-003", Name: "Invoice_Acme_Corp_2024.pdf", Type: "pdf", Description: "Acme Corp billing"},
		{ID: "doc-004", Name: "Meeting_Notes_Q1.docx", Type: "docx", Description: "Quarterly review notes"},
		{ID: "doc-005", Name: "Budget_2024.xlsx", Type: "xlsx", Description: "Annual budget sheet"},
		{ID: "doc-006", Name: "Invoice_Office_Supplies.pdf", Type: "pdf", Description: "Office supplies order"},
		{ID: "doc-007", Name: "Supplier_Evaluation.docx", Type: "docx", Description: "Vendor scoring"},
		{ID: "doc-008", Name: "Delivery_Note_4412.pdf", Type: "pdf", Description: "Goods receipt"},
		{ID: "doc-009", Name: "Invoice_Consulting_Services.pdf", Type: "pdf", Description: "Consulting fees"},
		{ID: "doc-010", Name: "RFP_Logistics_2024.pdf", Type: "pdf", Description: "Request for proposal"},
		{ID: "doc-011", Name: "Tender_Response_Beta.docx", Type: "docx", Description: "Tender submission"},
		{ID: "doc-012", Name: "Price_List_2024.xlsx", Type: "xlsx", Description: "Updated price list"},
		{ID: "doc-013", Name: "Invoice_Maintenance_Contract.pdf", Type: "pdf", Description: "Maintenance billing"},
		{ID: "doc-014", Name: "Audit_Report_2023.pdf", Type: "pdf", Description: "External audit findings"},
		{ID: "doc-015", Name: "NDA_Supplier_Gamma.pdf", Type: "pdf", Description: "Non-disclosure agreement"},
		{ID: "doc-016", Name: "Shipping_Schedule.xlsx", Type: "xlsx", Description: "Weekly shipping plan"},
		{ID: "doc-017", Name: "Quality_Certificate_ISO.pdf", Type: "pdf", Description: "ISO certification"},
		{ID: "doc-018", Name: "Purchase_Order_8821.pdf", Type: "pdf", Description: "PO for raw materials"},
		{ID: "doc-019", Name: "Warranty_Terms.docx", Type: "docx", Description: "Warranty conditions"},
		{ID: "doc-020", Name: "Catalog_Spring_2024.pdf", Type: "pdf", Description: "Product catalog"},
		{ID: "doc-021", Name: "Expense_Report_March.xlsx", Type: "xlsx", Description: "Travel expenses"},
	}
}

func docFields(d fixtureDoc) []string {
	return []string{d.Name, d.Description}
}

func TestApplyTextSearch(t *testing.T) {
	docs := fixtureDocs()

	got := Apply(docs,
		Text[fixtureDoc]{Query: "invoice", Fields: docFields},
		Exact[fixtureDoc]{Value: All, Field: func(d fixtureDoc) string { return d.Type }},
	)

	if len(got) != 5 {
		t.Fatalf("expected 5 invoice matches, got %d", len(got))
	}

	want := map[string]bool{
		"Invoice_2024_001.pdf":             true,
		"Invoice_Acme_Corp_2024.pdf":       true,
		"Invoice_Office_Supplies.pdf":      true,
		"Invoice_Consulting_Services.pdf":  true,
		"Invoice_Maintenance_Contract.pdf": true,
	}
	for _, d := range got {
		if !want[d.Name] {
			t.Errorf("unexpected match: %s", d.Name)
		}
	}
}

func TestApplyCaseInsensitive(t *testing.T) {
	docs := fixtureDocs()

	lower := Apply(docs, Text[fixtureDoc]{Query: "invoice", Fields: docFields})
	upper := Apply(docs, Text[fixtureDoc]{Query: "INVOICE", Fields: docFields})

	if len(lower) != len(upper) {
		t.Errorf("case sensitivity leak: %d vs %d", len(lower), len(upper))
	}
}

func TestApplyIdempotent(t *testing.T) {
	docs := fixtureDocs()
	specs := []Spec[fixtureDoc]{
		Text[fixtureDoc]{Query: "invoice", Fields: docFields},
		Exact[fixtureDoc]{Value: "pdf", Field: func(d fixtureDoc) string { return d.Type }},
	}

	once := Apply(docs, specs...)
	twice := Apply(once, specs...)

	if len(once) != len(twice) {
		t.Fatalf("Apply not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("item %d changed: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestExactFilterSentinel(t *testing.T) {
	docs := fixtureDocs()

	all := Apply(docs, Exact[fixtureDoc]{Value: All, Field: func(d fixtureDoc) string { return d.Type }})
	if len(all) != len(docs) {
		t.Errorf("'all' sentinel should bypass the filter, got %d of %d", len(all), len(docs))
	}

	xlsx := Apply(docs, Exact[fixtureDoc]{Value: "xlsx", Field: func(d fixtureDoc) string { return d.Type }})
	if len(xlsx) != 4 {
		t.Errorf("expected 4 xlsx docs, got %d", len(xlsx))
	}
}

func TestRangeFilterInclusiveBounds(t *testing.T) {
	type supplier struct {
		Name   string
		Rating float64
	}
	suppliers := []supplier{
		{"Alpha", 2.9},
		{"Beta", 3.0},
		{"Gamma", 4.5},
		{"Delta", 5.0},
		{"Epsilon", 5.1},
	}

	got := Apply(suppliers, Range[supplier]{
		Min: 3.0, Max: 5.0, Active: true,
		Field: func(s supplier) float64 { return s.Rating },
	})

	if len(got) != 3 {
		t.Fatalf("inclusive [3.0, 5.0] should match 3 suppliers, got %d", len(got))
	}
	if got[0].Name != "Beta" || got[2].Name != "Delta" {
		t.Errorf("bounds not inclusive: %+v", got)
	}
}

func TestApplyEmptyQueryNoOp(t *testing.T) {
	docs := fixtureDocs()
	got := Apply(docs, Text[fixtureDoc]{Query: "   ", Fields: docFields})
	if len(got) != len(docs) {
		t.Errorf("blank query must not filter, got %d of %d", len(got), len(docs))
	}
}
