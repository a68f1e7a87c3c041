package explain

import (
	"github.com/bitop-dev/explain/gemini"
	igemini "github.com/bitop-dev/explain/internal/gemini"
	"github.com/bitop-dev/explain/internal/provider"
)

func init() {
	if err := provider.Register(gemini.ProviderName, &igemini.Provider{}); err != nil {
		panic(err)
	}
}
