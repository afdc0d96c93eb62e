package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración del servicio (lectura vía Viper desde env y
// opcionalmente archivo). Se carga una vez al inicio de sesión; el motor de
// costeo la recibe como valores explícitos, nunca lee estado global.
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	Costeo  CosteoConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP propio.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig acceso al backend REST de V-Doctor.
type BackendConfig struct {
	BaseURL        string
	Token          string // bearer token de sesión; vacío = sin Authorization
	TimeoutSeconds int
}

// Timeout devuelve el timeout de red como duración.
func (c BackendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// CosteoConfig configuración de la sesión de costeo.
type CosteoConfig struct {
	CambioMoneda string // tasa CUP por USD; separador decimal coma o punto
	Politica     string // "Promedio ponderado", "Primero en entrar, primero en salir" o vacío
	IDUsuario    string // usuario que firma las entradas creadas
}

// TasaCambio interpreta CambioMoneda tolerando coma como separador decimal.
// Valores ausentes, malformados o no positivos devuelven cero: la derivación
// del costo USD se omite y el campo dependiente queda en cero.
func (c CosteoConfig) TasaCambio() decimal.Decimal {
	s := strings.TrimSpace(strings.ReplaceAll(c.CambioMoneda, ",", "."))
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return d
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// BACKEND_BASE_URL, CAMBIO_MONEDA, POLITICA_COSTO, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "vdoctor-costing"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Backend: BackendConfig{
			BaseURL:        getString(v, "BACKEND_BASE_URL", "http://localhost:3000"),
			Token:          getString(v, "SESSION_TOKEN", ""),
			TimeoutSeconds: getInt(v, "BACKEND_TIMEOUT_SECONDS", 30),
		},
		Costeo: CosteoConfig{
			CambioMoneda: getString(v, "CAMBIO_MONEDA", ""),
			Politica:     getString(v, "POLITICA_COSTO", ""),
			IDUsuario:    getString(v, "ID_USUARIO", ""),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
