package dto

type UpdateProfileRequest struct {
	Nickname          string `json:"nickname,omitempty"`
	Pronouns          string `json:"pronouns,omitempty"`
	Timezone          string `json:"timezone,omitempty"`
	Language          string `json:"language,omitempty"`
	MedicalConditions string `json:"medical_conditions,omitempty"`
	Medications       string `json:"medications,omitempty"`
	ComfortLevel      int    `json:"comfort_level,omitempty" validate:"omitempty,min=1,max=5"`
	Goals             string `json:"goals,omitempty"`
	CheckinFrequency  string `json:"checkin_frequency,omitempty"`
}

type ProfileResponse struct {
	Nickname          string `json:"nickname"`
	Pronouns          string `json:"pronouns"`
	Timezone          string `json:"timezone"`
	Language          string `json:"language"`
	MedicalConditions string `json:"medical_conditions"`
	Medications       string `json:"medications"`
	ComfortLevel      int    `json:"comfort_level"`
	Goals             string `json:"goals"`
	CheckinFrequency  string `json:"checkin_frequency"`
}
