package cmd

import "time"

type Config struct {
	HTTPPort      string
	WhatsAppPhone string
	ViaCEPBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	SessionTTL    time.Duration
}
