package model

import "time"

type Profile struct {
	ID          int64      `json:"id"`
	AccountID   int64      `json:"account_id"`
	Bio         *string    `json:"bio,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
}
