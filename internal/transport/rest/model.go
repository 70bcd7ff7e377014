package rest

type conditionRequest struct {
	Screen          int  `json:"screen_condition" validate:"required,min=1,max=4"`
	Body            int  `json:"body_condition" validate:"required,min=1,max=4"`
	FullyFunctional bool `json:"fully_functional"`
	CameraWorks     bool `json:"camera_works"`
	BatteryHealth   bool `json:"battery_health"`
	OriginalBox     bool `json:"original_box"`
	ChargerIncluded bool `json:"charger_included"`
}

type quoteRequest struct {
	Brand     string            `json:"brand" validate:"required"`
	Model     string            `json:"model" validate:"required"`
	Storage   string            `json:"storage" validate:"required"`
	Condition *conditionRequest `json:"condition" validate:"required"`
}

type quoteRequestV2 struct {
	Brand   string `json:"brand" validate:"required"`
	Model   string `json:"model" validate:"required"`
	Storage string `json:"storage" validate:"required"`
	Grade   string `json:"grade" validate:"required"`
}

type quoteResponse struct {
	OurPrice         int     `json:"ourPrice"`
	CexPrice         float64 `json:"cexPrice"`
	MusicMagpiePrice float64 `json:"musicMagpiePrice"`
	Message          string  `json:"message,omitempty"`
}
