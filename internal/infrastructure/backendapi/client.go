package backendapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/davidquintanajob/vdoctor-costing/internal/domain"
)

// Config del cliente HTTP hacia el backend V-Doctor.
type Config struct {
	BaseURL string
	Token   string // bearer token de sesión; vacío = sin header Authorization
	Timeout time.Duration
}

// Client consume la API REST del backend V-Doctor (JSON sobre HTTP).
// Implementa repository.HistorialRepository, repository.ComerciableRepository
// y repository.EntradaRepository. Usa net/http de la stdlib con un timeout
// configurable; el backend puede estar en redes lentas de la clínica.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient construye el cliente. Sin timeout configurado usa 30 s.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BackendError conserva el estado HTTP y el mensaje original del backend
// para mostrarlo tal cual al usuario.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend respondió %d: %s", e.Status, e.Message)
}

// Unwrap permite detectar el fallo con errors.Is(err, domain.ErrBackend)
// sin que las capas superiores importen este paquete.
func (e *BackendError) Unwrap() error { return domain.ErrBackend }

// doJSON ejecuta la petición, agrega el bearer token si está configurado y
// decodifica la respuesta en out (nil descarta el cuerpo).
// Un 403 significa sesión expirada: se devuelve domain.ErrSesionExpirada y
// no se reintenta.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("serializar cuerpo: %w", err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20)) // max 1 MB
	if err != nil {
		return fmt.Errorf("leer respuesta: %w", err)
	}

	if resp.StatusCode == http.StatusForbidden {
		return domain.ErrSesionExpirada
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &BackendError{Status: resp.StatusCode, Message: mensajeDeError(raw)}
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("decodificar respuesta: %w", err)
		}
	}
	return nil
}

// mensajeDeError extrae el campo error/message/errors del cuerpo tal cual lo
// envía el backend; si no trae ninguno, mensaje genérico.
func mensajeDeError(raw []byte) string {
	var cuerpo struct {
		Error   string          `json:"error"`
		Message string          `json:"message"`
		Errors  json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(raw, &cuerpo); err == nil {
		if cuerpo.Error != "" {
			return cuerpo.Error
		}
		if cuerpo.Message != "" {
			return cuerpo.Message
		}
		if len(cuerpo.Errors) > 0 && string(cuerpo.Errors) != "null" {
			return string(cuerpo.Errors)
		}
	}
	return "no se pudo contactar con el servidor"
}

// parseFecha interpreta la fecha ISO 8601 del backend. Fechas ausentes o
// malformadas devuelven el cero de time.Time, que ordena como la más antigua.
func parseFecha(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
