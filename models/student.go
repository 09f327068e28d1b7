package models

import "time"

// Student belongs to the side school module, stored in MongoDB.
type Student struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	Name      string       `json:"name" bson:"name"`
	Class     string       `json:"class" bson:"class"`
	Section   string       `json:"section" bson:"section"`
	RollNo    int          `json:"roll_no" bson:"roll_no"`
	Phone     string       `json:"phone" bson:"phone"`
	FeesTotal float64      `json:"fees_total" bson:"fees_total"`
	FeesPaid  float64      `json:"fees_paid" bson:"fees_paid"`
	Payments  []FeePayment `json:"payments,omitempty" bson:"payments,omitempty"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}

type FeePayment struct {
	Date   time.Time `json:"date" bson:"date"`
	Amount float64   `json:"amount" bson:"amount"`
	Mode   string    `json:"mode" bson:"mode"`
}
