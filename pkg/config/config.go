package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultAddressPriority orden fijo de barangays/zonas usado para ordenar las entregas activas.
var DefaultAddressPriority = []string{
	"Barrio Militar",
	"Liwayway",
	"Mapalad",
	"Malacañang",
	"Patalac",
	"Kalikid sur",
	"Kalikid norte",
	"Camptinio",
	"Bangad",
	"Bakod bayan",
	"Cabanatuan",
}

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	DB         DBConfig
	JWT        JWTConfig
	HTTP       HTTPConfig
	Redis      RedisConfig
	Delivery   DeliveryConfig
	Geo        GeoConfig
	Simulation SimulationConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
	Timezone string // zona horaria para el corte del historial diario (vacío = hora local del servidor)
	Storage  string // postgres | memory
}

// IsProduction indica si se corre en producción (no se exponen errores internos al cliente).
func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

// Location devuelve la zona horaria configurada; si no es válida usa time.Local.
func (c AppConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// RedisConfig configuración del almacén de ubicaciones del rider.
// Addr vacío = almacén en memoria (desarrollo).
type RedisConfig struct {
	Addr        string
	Password    string
	DB          int
	LocationTTL time.Duration
}

// DeliveryConfig reglas de negocio del listado de entregas.
type DeliveryConfig struct {
	AddressPriority []string
}

// GeoConfig coordenadas por defecto.
type GeoConfig struct {
	FallbackLat float64 // se asigna al cliente cuando no trae coordenadas válidas
	FallbackLng float64
	CenterLat   float64 // centro del mapa cuando no hay rider ni entregas
	CenterLng   float64
}

// SimulationConfig parámetros del rider simulado en el mapa.
type SimulationConfig struct {
	StepDegrees float64
	Interval    time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_HOST, DB_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "rider-tracker"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
			Timezone: getString(v, "APP_TIMEZONE", ""),
			Storage:  strings.ToLower(getString(v, "STORAGE_DRIVER", "postgres")),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "rider_tracker"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24*7),
			Issuer:     getString(v, "JWT_ISSUER", "rider-tracker"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5000),
		},
		Redis: RedisConfig{
			Addr:        getString(v, "REDIS_ADDR", ""),
			Password:    getString(v, "REDIS_PASSWORD", ""),
			DB:          getInt(v, "REDIS_DB", 0),
			LocationTTL: time.Duration(getInt(v, "LOCATION_TTL_MINUTES", 60)) * time.Minute,
		},
		Delivery: DeliveryConfig{
			AddressPriority: getList(v, "DELIVERY_ADDRESS_PRIORITY", DefaultAddressPriority),
		},
		Geo: GeoConfig{
			FallbackLat: getFloat(v, "GEO_FALLBACK_LAT", 15.484995),
			FallbackLng: getFloat(v, "GEO_FALLBACK_LNG", 121.086929),
			CenterLat:   getFloat(v, "GEO_CENTER_LAT", 14.5995),
			CenterLng:   getFloat(v, "GEO_CENTER_LNG", 120.9842),
		},
		Simulation: SimulationConfig{
			StepDegrees: getFloat(v, "SIM_STEP_DEGREES", 0.0005),
			Interval:    time.Duration(getInt(v, "SIM_INTERVAL_MS", 3000)) * time.Millisecond,
		},
	}

	if cfg.App.Storage != "postgres" && cfg.App.Storage != "memory" {
		return nil, fmt.Errorf("config: STORAGE_DRIVER inválido %q (postgres|memory)", cfg.App.Storage)
	}
	if cfg.Simulation.StepDegrees <= 0 {
		return nil, fmt.Errorf("config: SIM_STEP_DEGREES debe ser > 0")
	}
	if cfg.Simulation.Interval <= 0 {
		return nil, fmt.Errorf("config: SIM_INTERVAL_MS debe ser > 0")
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if !v.IsSet(key) {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v.GetString(key)), 64)
	if err != nil {
		return def
	}
	return f
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}

// getList lee una lista separada por comas; entradas vacías se descartan.
func getList(v *viper.Viper, key string, def []string) []string {
	if !v.IsSet(key) {
		return append([]string(nil), def...)
	}
	var out []string
	for _, s := range strings.Split(v.GetString(key), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}
