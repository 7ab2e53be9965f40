// Package config loads the runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dojo-ledger/backend/internal/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

var (
	ErrInvalidURL      = errors.New("API_URL must be a valid absolute URL")
	ErrInvalidCurrency = errors.New("CURRENCY must be a valid ISO 4217 currency code")
	ErrInvalidLocale   = errors.New("LOCALE must be a valid BCP 47 language tag")
	ErrInvalidLayout   = errors.New("DISPLAY_DATE_FORMAT must be a valid date layout")
)

// DefaultIncomeCategories are used when INCOME_CATEGORIES is not set.
var DefaultIncomeCategories = []string{
	"Alquiler de Taquillas Personales",
	"Ingresos por Cuotas Mensuales",
	"Ingresos por Cuotas Trimestrales",
	"Ingresos por Pases Diarios",
	"Organización de Eventos Especiales",
	"Otros Ingresos Diversos",
	"Ropa y Accesorios del Gimnasio",
	"Servicios de Entrenamiento Personal",
	"Venta de Suplementos y Bebidas",
}

// DefaultExpenseCategories are used when EXPENSE_CATEGORIES is not set.
var DefaultExpenseCategories = []string{
	"Adquisición de Nuevo Equipamiento",
	"Alquiler/Hipoteca del Local",
	"Asesoría Fiscal, Laboral y Contable",
	"Comisiones Bancarias y Gastos Financieros",
	"Costes de Suministros (Luz, Agua, Gas, Internet)",
	"Formación Continua del Personal",
	"Gastos Imprevistos y Varios",
	"Impuestos, Tasas y Licencias Municipales",
	"Mantenimiento Programado de Equipos",
	"Marketing, Publicidad y Promociones",
	"Material de Oficina y Consumibles",
	"Nóminas y Seguridad Social del Personal",
	"Primas de Seguros del Negocio",
	"Reparaciones y Mantenimiento Correctivo",
	"Servicios de Limpieza Regulares",
	"Software de Gestión y Licencias SaaS",
}

// Config is the configuration of the backend. It is loaded once on startup
// and handed to the components that need it.
type Config struct {
	DataDir           string
	DBFile            string
	APIURL            *url.URL // nil when API_URL is not set
	Currency          string   // ISO 4217 code
	Locale            language.Tag
	DisplayDateFormat string
	IncomeCategories  []string
	ExpenseCategories []string
	CORSAllowOrigins  []string
	EnablePprof       bool
}

// Load reads the configuration from the environment and applies defaults.
func Load() (Config, error) {
	c := Config{
		DataDir:           getenv("DATA_DIR", "data"),
		DBFile:            getenv("DB_FILE", "ledger.db"),
		Currency:          strings.ToUpper(getenv("CURRENCY", "EUR")),
		DisplayDateFormat: getenv("DISPLAY_DATE_FORMAT", types.DisplayLayout),
		IncomeCategories:  list("INCOME_CATEGORIES", DefaultIncomeCategories),
		ExpenseCategories: list("EXPENSE_CATEGORIES", DefaultExpenseCategories),
		CORSAllowOrigins:  strings.Fields(os.Getenv("CORS_ALLOW_ORIGINS")),
		EnablePprof:       os.Getenv("ENABLE_PPROF") == "true",
	}

	if apiURL, ok := os.LookupEnv("API_URL"); ok {
		u, err := url.Parse(apiURL)
		if err != nil || !u.IsAbs() {
			return Config{}, fmt.Errorf("%w: %q", ErrInvalidURL, apiURL)
		}
		c.APIURL = u
	}

	if _, err := currency.ParseISO(c.Currency); err != nil {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidCurrency, c.Currency)
	}

	locale, err := language.Parse(getenv("LOCALE", "es"))
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidLocale, err)
	}
	c.Locale = locale

	// A layout without any date element formats every date the same way
	sample := types.NewDate(2006, 1, 2)
	if sample.Format(c.DisplayDateFormat) == sample.AddDays(1).Format(c.DisplayDateFormat) {
		return Config{}, fmt.Errorf("%w: %q", ErrInvalidLayout, c.DisplayDateFormat)
	}

	log.Debug().
		Str("dataDir", c.DataDir).
		Str("currency", c.Currency).
		Str("locale", c.Locale.String()).
		Msg("Config")

	return c, nil
}

// DSN returns the path of the SQLite database file.
func (c Config) DSN() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// Categories returns the configured categories for the kind, "income" or "expense".
// Any other kind returns both lists.
func (c Config) Categories(kind string) []string {
	switch kind {
	case "income":
		return c.IncomeCategories
	case "expense":
		return c.ExpenseCategories
	}

	all := make([]string, 0, len(c.IncomeCategories)+len(c.ExpenseCategories))
	all = append(all, c.IncomeCategories...)
	return append(all, c.ExpenseCategories...)
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

// list splits a ";" separated variable, dropping empty entries.
func list(key string, fallback []string) []string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}

	var entries []string
	for _, e := range strings.Split(value, ";") {
		if e = strings.TrimSpace(e); e != "" {
			entries = append(entries, e)
		}
	}

	if len(entries) == 0 {
		return fallback
	}
	return entries
}
