// Package api implementa los puertos de internal/domain/repository contra la
// API remota de gestión de doaciones (JSON sobre HTTP, sesión por cookie).
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/painel-ajuda/internal/domain"
	"github.com/jhoicas/painel-ajuda/pkg/config"
	"github.com/jhoicas/painel-ajuda/pkg/logger"
)

// listPageSize tamaño de página pedido en los listados paginados; la caché
// refleja solo la primera página (ver warnTruncated).
const listPageSize = 500

// Client cliente resty compartido por los repositorios. Conserva la cookie
// de sesión de la API remota entre peticiones.
type Client struct {
	http *resty.Client
	log  *logger.Logger
}

// NewClient construye el cliente a partir de la configuración.
func NewClient(cfg config.UpstreamConfig, log *logger.Logger) *Client {
	if log == nil {
		log = logger.Nop()
	}
	log = log.Component("upstream")

	r := resty.New()
	r.SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetLogger(restyLogger{log: log})

	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})
	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		log.Debug().
			Str("method", resp.Request.Method).
			Str("url", resp.Request.URL).
			Int("status", resp.StatusCode()).
			Dur("elapsed", resp.Time()).
			Msg("petición a la API")
		return nil
	})

	return &Client{http: r, log: log}
}

// envelope campos comunes de toda respuesta de la API.
type envelope struct {
	Success *bool  `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// call ejecuta una petición y decodifica el cuerpo en out.
//   - fallo de red o cuerpo no decodificable: domain.ErrTransport
//   - HTTP >= 400 o success distinto de true: *domain.RejectionError
//
// Con requireSuccess=false solo el estado HTTP decide el rechazo (endpoints
// que no envían success).
func (c *Client) call(ctx context.Context, method, path string, body, out any, requireSuccess bool) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}
	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Warn().Err(err).Str("method", method).Str("path", path).Dur("elapsed", time.Since(start)).Msg("fallo de transporte")
		return fmt.Errorf("%w: %s %s: %v", domain.ErrTransport, method, path, err)
	}

	raw := resp.Body()
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %s %s: respuesta no decodificable (http %d): %v",
			domain.ErrTransport, method, path, resp.StatusCode(), err)
	}
	if resp.IsError() || (requireSuccess && (env.Success == nil || !*env.Success)) {
		return &domain.RejectionError{Status: resp.StatusCode(), Message: env.Error}
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w: %s %s: %v", domain.ErrTransport, method, path, err)
		}
	}
	return nil
}

// pagination bloque de paginación de los listados.
type pagination struct {
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Total   int  `json:"total"`
	HasNext bool `json:"has_next"`
}

// warnTruncated registra un aviso si el servidor tiene más páginas que la
// pedida: la caché no incluirá esos registros.
func (c *Client) warnTruncated(path string, p *pagination) {
	if p == nil || !p.HasNext {
		return
	}
	c.log.Warn().
		Str("path", path).
		Int("per_page", p.PerPage).
		Int("total", p.Total).
		Msg("listado truncado: el servidor tiene más páginas")
}

// restyLogger adapta logger.Logger a la interfaz resty.Logger.
type restyLogger struct {
	log *logger.Logger
}

func (l restyLogger) Errorf(format string, v ...interface{}) {
	l.log.Error().Msgf(format, v...)
}

func (l restyLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Msgf(format, v...)
}

func (l restyLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Msgf(format, v...)
}
