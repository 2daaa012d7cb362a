package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
	"net/mail"
	"strings"
)

type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Rating    int                `bson:"rating" json:"rating"`
	Comment   string             `bson:"comment" json:"comment"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"created_at"`
}

func (f Feedback) Validate() []string {
	var errs []string
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, "name is required")
	}
	if _, err := mail.ParseAddress(f.Email); err != nil {
		errs = append(errs, "email is invalid")
	}
	if f.Rating < 1 || f.Rating > 5 {
		errs = append(errs, "rating must be between 1 and 5")
	}
	if len(f.Comment) > 2000 {
		errs = append(errs, "comment must not exceed 2000 characters")
	}
	return errs
}

type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Subject   string             `bson:"subject" json:"subject"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt primitive.DateTime `bson:"created_at" json:"created_at"`
}

func (cm ContactMessage) Validate() []string {
	var errs []string
	if strings.TrimSpace(cm.Name) == "" {
		errs = append(errs, "name is required")
	}
	if _, err := mail.ParseAddress(cm.Email); err != nil {
		errs = append(errs, "email is invalid")
	}
	if strings.TrimSpace(cm.Message) == "" {
		errs = append(errs, "message is required")
	}
	if len(cm.Message) > 2000 {
		errs = append(errs, "message must not exceed 2000 characters")
	}
	return errs
}
