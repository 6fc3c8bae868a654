package model

// PatientProfile holds the demographic answers of one session.
// Gender and Region are collected but do not affect the estimate.
type PatientProfile struct {
	Age    int
	BMI    float64
	Smoker bool
	Gender string
	Region string
}
