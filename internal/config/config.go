package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Database     Database     `mapstructure:",squash"`
	Render       Render       `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	Scoring      Scoring      `mapstructure:",squash"`
	Collectors   Collectors   `mapstructure:",squash"`
	Google       Google       `mapstructure:",squash"`
	FollowUp     FollowUp     `mapstructure:",squash"`
	SMTP         SMTP         `mapstructure:",squash"`
	WhatsApp     WhatsApp     `mapstructure:",squash"`
	Notification Notification `mapstructure:",squash"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	PublicRPS      float64  `mapstructure:"public_rate_limit_rps"` // requisições por segundo por IP nas rotas públicas
	PublicBurst    int      `mapstructure:"public_rate_limit_burst"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	MaxIdleConns    int           `mapstructure:"database_max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
	ConnectRetries  int           `mapstructure:"database_connect_retries"` // tentativas de ping na subida
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Auth struct {
	Secret      string `mapstructure:"auth_secret"`
	CronKeyHash string `mapstructure:"cron_key_hash"` // hash bcrypt da chave enviada em X-Cron-Key
}

// Scoring define os pesos de cada eixo no score geral. A soma deve ser 1.
type Scoring struct {
	WeightGBP    float64 `mapstructure:"scoring_weight_gbp"`
	WeightSite   float64 `mapstructure:"scoring_weight_site"`
	WeightSocial float64 `mapstructure:"scoring_weight_social"`
}

type Collectors struct {
	GBPTimeout    time.Duration `mapstructure:"collector_gbp_timeout"`
	SiteTimeout   time.Duration `mapstructure:"collector_site_timeout"`
	SocialTimeout time.Duration `mapstructure:"collector_social_timeout"`
	UserAgent     string        `mapstructure:"collector_user_agent"`
}

type Google struct {
	PlacesURL string  `mapstructure:"google_places_url"`
	APIKey    string  `mapstructure:"google_places_api_key"`
	Language  string  `mapstructure:"google_places_language"`
	QPS       float64 `mapstructure:"google_places_qps"`
	Burst     int     `mapstructure:"google_places_burst"`
}

type FollowUp struct {
	Cadence       []time.Duration `mapstructure:"followup_cadence"`
	Canal         string          `mapstructure:"followup_canal"`
	ClaimLease    time.Duration   `mapstructure:"followup_claim_lease"`
	NotifyTimeout time.Duration   `mapstructure:"followup_notify_timeout"`
	MaxTentativas int             `mapstructure:"followup_max_tentativas"`
	BatchLimit    int             `mapstructure:"followup_batch_limit"`
	CronSchedule  string          `mapstructure:"followup_cron"`
	Enabled       bool            `mapstructure:"followup_sync_enabled"`
}

type SMTP struct {
	Host     string `mapstructure:"smtp_host"`
	Port     int    `mapstructure:"smtp_port"`
	User     string `mapstructure:"smtp_user"`
	Password string `mapstructure:"smtp_password"`
	From     string `mapstructure:"smtp_from"`
	FromName string `mapstructure:"smtp_from_name"`
}

type WhatsApp struct {
	URL           string `mapstructure:"whatsapp_url"`
	Token         string `mapstructure:"whatsapp_token"`
	PhoneNumberID string `mapstructure:"whatsapp_phone_number_id"`
	Enabled       bool   `mapstructure:"whatsapp_enabled"`
}

type Notification struct {
	SalesTeamEmail string `mapstructure:"notification_sales_team_email"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("PUBLIC_RATE_LIMIT_RPS", 0.5)
	viper.SetDefault("PUBLIC_RATE_LIMIT_BURST", 5)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/leads")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 20)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")
	viper.SetDefault("DATABASE_CONNECT_RETRIES", 5)

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("CRON_KEY_HASH", "")

	viper.SetDefault("SCORING_WEIGHT_GBP", 0.5)
	viper.SetDefault("SCORING_WEIGHT_SITE", 0.3)
	viper.SetDefault("SCORING_WEIGHT_SOCIAL", 0.2)

	viper.SetDefault("COLLECTOR_GBP_TIMEOUT", "8s")
	viper.SetDefault("COLLECTOR_SITE_TIMEOUT", "5s")
	viper.SetDefault("COLLECTOR_SOCIAL_TIMEOUT", "5s")
	viper.SetDefault("COLLECTOR_USER_AGENT", "LeadIntelligenceBot/1.0")

	viper.SetDefault("GOOGLE_PLACES_URL", "https://maps.googleapis.com/maps/api/place")
	viper.SetDefault("GOOGLE_PLACES_API_KEY", "")
	viper.SetDefault("GOOGLE_PLACES_LANGUAGE", "pt-BR")
	viper.SetDefault("GOOGLE_PLACES_QPS", 5)
	viper.SetDefault("GOOGLE_PLACES_BURST", 5)

	// Defaults para follow-ups
	viper.SetDefault("FOLLOWUP_CADENCE", "24h,72h,168h,336h") // 1, 3, 7 e 14 dias
	viper.SetDefault("FOLLOWUP_CANAL", "EMAIL")
	viper.SetDefault("FOLLOWUP_CLAIM_LEASE", "5m")
	viper.SetDefault("FOLLOWUP_NOTIFY_TIMEOUT", "1m") // precisa ser menor que o lease
	viper.SetDefault("FOLLOWUP_MAX_TENTATIVAS", 3)
	viper.SetDefault("FOLLOWUP_BATCH_LIMIT", 100)
	viper.SetDefault("FOLLOWUP_CRON", "*/15 * * * *") // A cada 15 minutos
	viper.SetDefault("FOLLOWUP_SYNC_ENABLED", false)

	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM", "contato@agencia.com.br")
	viper.SetDefault("SMTP_FROM_NAME", "Equipe Comercial")

	viper.SetDefault("WHATSAPP_URL", "https://graph.facebook.com/v22.0")
	viper.SetDefault("WHATSAPP_TOKEN", "")
	viper.SetDefault("WHATSAPP_PHONE_NUMBER_ID", "")
	viper.SetDefault("WHATSAPP_ENABLED", false)

	viper.SetDefault("NOTIFICATION_SALES_TEAM_EMAIL", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		secrets, err := renderClient.ListSecrets(ctx, config.Render.ServiceID)
		cancel()
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}
		config.applySecrets(secrets)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// applySecrets preenche credenciais ausentes com os secret files do Render
func (c *Config) applySecrets(secrets map[string]string) {
	fill := func(target *string, name string) {
		if value, ok := secrets[name]; ok && *target == "" {
			*target = value
		}
	}

	fill(&c.Google.APIKey, "google_places_api_key")
	fill(&c.SMTP.Password, "smtp_password")
	fill(&c.WhatsApp.Token, "whatsapp_token")
	fill(&c.Auth.CronKeyHash, "cron_key_hash")
}

// Validate verifica as invariantes de configuração que o restante do serviço assume
func (c *Config) Validate() error {
	sum := c.Scoring.WeightGBP + c.Scoring.WeightSite + c.Scoring.WeightSocial
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("pesos de score devem somar 1, soma atual: %.3f", sum)
	}

	if len(c.FollowUp.Cadence) == 0 {
		return fmt.Errorf("cadência de follow-up não pode ser vazia")
	}
	for i, offset := range c.FollowUp.Cadence {
		if offset <= 0 {
			return fmt.Errorf("offset %d da cadência de follow-up deve ser positivo", i)
		}
		if i > 0 && offset <= c.FollowUp.Cadence[i-1] {
			return fmt.Errorf("offset %d da cadência de follow-up deve ser maior que o anterior", i)
		}
	}

	// um envio mais longo que o lease deixaria outro lote reivindicar e reenviar o follow-up
	if c.FollowUp.NotifyTimeout <= 0 || c.FollowUp.NotifyTimeout >= c.FollowUp.ClaimLease {
		return fmt.Errorf("FOLLOWUP_NOTIFY_TIMEOUT (%s) deve ser positivo e menor que FOLLOWUP_CLAIM_LEASE (%s)",
			c.FollowUp.NotifyTimeout, c.FollowUp.ClaimLease)
	}

	if c.FollowUp.MaxTentativas <= 0 {
		return fmt.Errorf("FOLLOWUP_MAX_TENTATIVAS deve ser maior que zero")
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
