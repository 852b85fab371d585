package routing

import "testing"

func TestClassify(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		path string
		want Classification
	}{
		{"/api/chatbot", ClassificationAPI},
		{"/api/health", ClassificationAPI},
		{"/_next/chunks/main.js", ClassificationStatic},
		{"/logo.png", ClassificationStatic},
		{"/styles/app.css", ClassificationStatic},
		{"/", ClassificationPublic},
		{"/login", ClassificationPublic},
		{"/signup", ClassificationPublic},
		{"/forgot-password", ClassificationPublic},
		{"/dashboard", ClassificationProtected},
		{"/dashboard/overview", ClassificationProtected},
		{"/sales", ClassificationProtected},
		{"/expenses", ClassificationProtected},
		{"/inventory", ClassificationProtected},
		{"/reports", ClassificationProtected},
		{"/chatbot", ClassificationProtected},
		{"/settings/profile", ClassificationProtected},
		{"/about", ClassificationDefault},
		{"/pricing", ClassificationDefault},
	}

	for _, tt := range tests {
		if got := classifier.Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.path, got, tt.want)
		}
	}
}

func TestClassifyIsDisjoint(t *testing.T) {
	classifier := NewClassifier()

	// A protected prefix with a file extension is still a static asset
	if got := classifier.Classify("/dashboard/report.pdf"); got != ClassificationStatic {
		t.Errorf("Classify(/dashboard/report.pdf) = %s, want %s", got, ClassificationStatic)
	}

	// The API prefix wins over everything else
	if got := classifier.Classify("/api/v2/export.csv"); got != ClassificationAPI {
		t.Errorf("Classify(/api/v2/export.csv) = %s, want %s", got, ClassificationAPI)
	}
}

func TestShouldSkip(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/_next/static/chunks/main.js", true},
		{"/_next/image?url=logo.png", true},
		{"/favicon.ico", true},
		{"/public/hero.jpg", true},
		{"/_next/data/build/index.json", false},
		{"/dashboard", false},
		{"/api/chatbot", false},
	}

	for _, tt := range tests {
		if got := ShouldSkip(tt.path); got != tt.want {
			t.Errorf("ShouldSkip(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestParsePolicy(t *testing.T) {
	if ParsePolicy("enforced") != PolicyEnforced {
		t.Error("ParsePolicy(enforced) should return PolicyEnforced")
	}
	if ParsePolicy("deferred") != PolicyDeferredToClient {
		t.Error("ParsePolicy(deferred) should return PolicyDeferredToClient")
	}
	// Unknown values fall back to the permissive default
	if ParsePolicy("strict") != PolicyDeferredToClient {
		t.Error("ParsePolicy(strict) should fall back to PolicyDeferredToClient")
	}
	if ParsePolicy("") != PolicyDeferredToClient {
		t.Error("ParsePolicy empty should fall back to PolicyDeferredToClient")
	}
}
