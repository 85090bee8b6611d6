package i18n

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// setupTestLocales cria arquivos de locale temporários com as chaves
// usadas pelo backend administrativo
func setupTestLocales(t *testing.T) string {
	t.Helper()

	tmpDir := t.TempDir()

	// Criar arquivo en.json
	enContent := `{
  "error.not_found.detail": "{{.Resource}} not found",
  "error.permission_key_exists": "A permission with this key already exists",
  "warning.subscription_already_cancelled": "Subscription is already cancelled; nothing changed"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "en.json"), []byte(enContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create en.json: %v", err)
	}

	// Criar arquivo pt-BR.json
	ptContent := `{
  "error.not_found.detail": "{{.Resource}} não encontrado",
  "error.permission_key_exists": "Já existe uma permissão com esta chave",
  "warning.subscription_already_cancelled": "A assinatura já está cancelada; nada foi alterado"
}`
	if err := os.WriteFile(filepath.Join(tmpDir, "pt-BR.json"), []byte(ptContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("failed to create pt-BR.json: %v", err)
	}

	return tmpDir
}

func TestNewService(t *testing.T) {
	t.Run("carrega traduções com sucesso", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		service, err := NewService(tmpDir, "en")
		if err != nil {
			t.Fatalf("esperava sucesso, obteve erro: %v", err)
		}

		if service.GetDefaultLanguage() != "en" {
			t.Errorf("esperava idioma padrão 'en', obteve '%s'", service.GetDefaultLanguage())
		}

		supportedLangs := service.GetSupportedLanguages()
		if len(supportedLangs) != 2 {
			t.Errorf("esperava 2 idiomas suportados, obteve %d", len(supportedLangs))
		}
	})

	t.Run("erro quando diretório não existe", func(t *testing.T) {
		_, err := NewService("/diretorio/inexistente", "en")
		if err == nil {
			t.Error("esperava erro, obteve sucesso")
		}
	})

	t.Run("erro quando idioma padrão não existe", func(t *testing.T) {
		tmpDir := setupTestLocales(t)

		_, err := NewService(tmpDir, "fr")
		if err == nil {
			t.Error("esperava erro para idioma padrão inexistente, obteve sucesso")
		}
	})
}

func TestService_T(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	t.Run("traduz mensagem simples em inglês", func(t *testing.T) {
		result := service.T("en", "error.permission_key_exists")
		expected := "A permission with this key already exists"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("traduz mensagem simples em português", func(t *testing.T) {
		result := service.T("pt-BR", "warning.subscription_already_cancelled")
		expected := "A assinatura já está cancelada; nada foi alterado"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("interpola o nome do recurso", func(t *testing.T) {
		result := service.T("en", "error.not_found.detail", map[string]interface{}{"Resource": "Subscription"})
		expected := "Subscription not found"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("interpola o nome do recurso em português", func(t *testing.T) {
		result := service.T("pt-BR", "error.not_found.detail", map[string]interface{}{"Resource": "Plano"})
		expected := "Plano não encontrado"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("fallback para idioma padrão quando chave não existe no idioma solicitado", func(t *testing.T) {
		result := service.T("es", "error.permission_key_exists")
		expected := "A permission with this key already exists" // Fallback para inglês
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})

	t.Run("retorna chave quando tradução não existe", func(t *testing.T) {
		result := service.T("en", "chave.inexistente")
		expected := "chave.inexistente"
		if result != expected {
			t.Errorf("esperava '%s', obteve '%s'", expected, result)
		}
	})
}

func TestService_IsLanguageSupported(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	tests := []struct {
		lang     string
		expected bool
	}{
		{"en", true},
		{"pt-BR", true},
		{"es", false},
		{"fr", false},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			result := service.IsLanguageSupported(tt.lang)
			if result != tt.expected {
				t.Errorf("para idioma '%s', esperava %v, obteve %v", tt.lang, tt.expected, result)
			}
		})
	}
}

func TestService_ThreadSafety(t *testing.T) {
	tmpDir := setupTestLocales(t)
	service, err := NewService(tmpDir, "en")
	if err != nil {
		t.Fatalf("falha ao inicializar serviço: %v", err)
	}

	// Executar traduções concorrentemente
	var wg sync.WaitGroup
	iterations := 100

	for i := 0; i < iterations; i++ {
		wg.Add(3)

		go func() {
			defer wg.Done()
			_ = service.T("en", "error.not_found.detail", map[string]interface{}{"Resource": "Group"})
		}()

		go func() {
			defer wg.Done()
			_ = service.T("pt-BR", "warning.subscription_already_cancelled")
		}()

		go func() {
			defer wg.Done()
			_ = service.IsLanguageSupported("en")
		}()
	}

	// Se houver race condition, este teste falhará com -race flag
	wg.Wait()
}
