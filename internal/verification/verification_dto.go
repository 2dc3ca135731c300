package verification

import "time"

type RequestCodeRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Purpose string `json:"purpose" binding:"required,oneof=ENROLL AUTHENTICATE"`
}

type RequestCodeResponse struct {
	ExpiresAt          time.Time `json:"expiresAt"`
	ResendAfterSeconds int       `json:"resendAfterSeconds"`
}

type VerifyCodeRequest struct {
	Phone   string `json:"phone" binding:"required"`
	Code    string `json:"code" binding:"required,len=6,numeric"`
	Purpose string `json:"purpose" binding:"required,oneof=ENROLL AUTHENTICATE"`
}

type VerifyCodeResponse struct {
	VerificationToken string    `json:"verificationToken"`
	ExpiresAt         time.Time `json:"expiresAt"`
}
