package client

import (
	"html/template"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

/*

template lookup

*/

func TestBasicLookup(t *testing.T) {
	defer func() {
		loadedTemplates = make(map[string]*template.Template)
	}()

	for _, name := range []string{"error", "solver", "home"} {
		tmpl1, err := loadPageTemplate(name)
		if err != nil {
			t.Fatalf("Failed to load %s template: %v", name, err)
		}
		tmpl2, err := loadPageTemplate(name)
		if err != nil || tmpl2 != tmpl1 {
			t.Errorf("Second load of %s template didn't use cache! (%v, %v)", name, tmpl2, tmpl1)
		}
	}
}

func TestEnvVarOverride(t *testing.T) {
	defer func() {
		loadedTemplates = make(map[string]*template.Template)
		os.Unsetenv(defaultTemplateDirectoryEnvVar)
	}()

	// first check that we fail with the wrong directory
	os.Setenv(defaultTemplateDirectoryEnvVar, filepath.Join("nosuchdir"))
	_, err := loadPageTemplate("error")
	if err == nil {
		t.Fatalf("Load with OS env directory %v", os.Getenv(defaultTemplateDirectoryEnvVar))
	}
	// now unset the environment to use the default
	os.Unsetenv(defaultTemplateDirectoryEnvVar)
	_, err = loadPageTemplate("error")
	if err != nil {
		t.Fatalf("Failed to load error template: %v", err)
	}
}

/*

resource checks and static serving

*/

func TestVerifyResources(t *testing.T) {
	defer os.Unsetenv(defaultStaticDirectoryEnvVar)

	if err := VerifyResources(); err != nil {
		t.Errorf("Verify failed with default directories: %v", err)
	}
	os.Setenv(defaultStaticDirectoryEnvVar, "nosuchdir")
	if err := VerifyResources(); err == nil {
		t.Errorf("Verify passed with a missing static directory")
	}
}

func TestStaticHandler(t *testing.T) {
	r := httptest.NewRequest("GET", "/robots.txt", nil)
	w := httptest.NewRecorder()
	if !StaticHandler(w, r) {
		t.Fatalf("Handler didn't recognize /robots.txt")
	}
	if w.Code != 200 {
		t.Errorf("Serving /robots.txt gave status %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Disallow") {
		t.Errorf("Wrong /robots.txt content: %q", w.Body.String())
	}

	r = httptest.NewRequest("GET", "/api/state", nil)
	w = httptest.NewRecorder()
	if StaticHandler(w, r) {
		t.Errorf("Handler claimed /api/state as a static resource")
	}
}
