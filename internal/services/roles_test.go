package services

import "testing"

func TestRoleCatalogDefaults(t *testing.T) {
	catalog := NewDefaultRoleCatalog()

	names := catalog.Names()
	if len(names) != 10 {
		t.Fatalf("expected 10 roles, got %d", len(names))
	}
	if catalog.DefaultRole() != "Software Engineer" {
		t.Fatalf("default role = %q", catalog.DefaultRole())
	}

	if got := catalog.MinCertifications("Software Engineer"); got != 1 {
		t.Fatalf("min certifications for known role = %d, want 1", got)
	}
	if got := catalog.MinCertifications("Astronaut"); got != 0 {
		t.Fatalf("min certifications for unknown role = %d, want 0", got)
	}
}

func TestRoleCatalogKeywords(t *testing.T) {
	catalog := NewDefaultRoleCatalog()

	if kws := catalog.Keywords("Data Scientist"); len(kws) != 6 {
		t.Fatalf("expected 6 keywords for Data Scientist, got %d", len(kws))
	}
	if kws := catalog.Keywords("Cybersecurity Analyst"); len(kws) != 0 {
		t.Fatalf("expected no keywords for Cybersecurity Analyst, got %v", kws)
	}

	// Mutating a returned slice must not leak into the catalog.
	kws := catalog.Keywords("Web Developer")
	kws[0] = "mutated"
	if catalog.Keywords("Web Developer")[0] != "html" {
		t.Fatalf("catalog keyword set was mutated through a returned slice")
	}
}
