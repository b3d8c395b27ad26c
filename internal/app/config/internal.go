package config

type (
	InternalConfig struct {
		App          App
		Notification Notification
		WhatsApp     WhatsApp
		SMS          SMS
		SMTP         SMTP
		Pipedrive    Pipedrive
		Oralsin      Oralsin
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		BaseUrl                    string
		Timezone                   string
		EndpointPrefix             string
		APIKey                     string
		ShutdownTimeout            int
		MaxRequests                int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	Notification struct {
		BatchSize              int
		WorkerIntervalInMinute int
		LockTTLInMinute        int
		SendTimeoutInSecond    int
		SendRatePerSecond      float64
		DefaultMinDaysOverdue  int
		LetterRecipientEmail   string
		LetterLinkExpiryInHour int
	}

	WhatsApp struct {
		Endpoint string
		APIKey   string
	}

	SMS struct {
		BaseUrl   string
		AuthToken string
	}

	SMTP struct {
		Host        string
		Username    string
		Password    string
		EmailSender string
		Port        int
	}

	Pipedrive struct {
		BaseUrl  string
		APIToken string
	}

	Oralsin struct {
		BaseUrl  string
		APIToken string
	}
)
