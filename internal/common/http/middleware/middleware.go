package middleware

import (
	"github.com/punyakios/go-kios-client/internal/common/idgenerator"
	"github.com/punyakios/go-kios-client/internal/config"
)

type AppMiddleware struct {
	conf config.Config
	ids  idgenerator.Generator
}

func NewMiddleware(conf config.Config, ids idgenerator.Generator) AppMiddleware {
	if ids == nil {
		ids = idgenerator.New()
	}
	return AppMiddleware{conf: conf, ids: ids}
}
