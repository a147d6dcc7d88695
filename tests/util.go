package testutil

import (
	"fmt"
	"log"
	"net/mail"
	"os"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/alama/core"
	"github.com/trezcool/alama/core/grade"
	logsvc "github.com/trezcool/alama/services/logger"
)

// SequentialIDs returns a deterministic IDGenerator for tests.
func SequentialIDs(prefix string) grade.IDGenerator {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("%s%d", prefix, n)
	}
}

func NewConfig() *core.Config {
	return &core.Config{
		TestMode:         true,
		Env:              "TEST",
		Build:            "test",
		AppName:          "Alama",
		DefaultFromEmail: mail.Address{Name: "Alama", Address: "noreply@localhost"},
		Server: core.ServerConfig{
			Addr:            ":0",
			ShutdownTimeout: time.Second,
		},
	}
}

func NewLogger() core.Logger {
	return logsvc.NewStdLogger(log.New(os.Stdout, "TEST : ", log.LstdFlags|log.Lshortfile))
}

// NewValidationContext wires up a validator + translator the way main does.
func NewValidationContext() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)
	return validate, translator
}
