package keywords

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  string
	}{
		{
			name:  "filename with extension",
			input: []string{"Invoice_Acme_Corp_2024.pdf"},
			want:  "2024, acme, corp, invoice",
		},
		{
			name:  "deduplicates across sources",
			input: []string{"Invoice_Acme.pdf", "Acme Corporation"},
			want:  "acme, corporation, invoice",
		},
		{
			name:  "drops stopwords and short tokens",
			input: []string{"Report for the Q1 review"},
			want:  "report, review",
		},
		{
			name:  "empty input",
			input: []string{""},
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.input...)
			if got != tt.want {
				t.Errorf("Extract(%v) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
