package ds

// TreatmentPlan ссылается на пациента только через PatientID, связь не проверяется.
type TreatmentPlan struct {
	ID             string `json:"id"`
	PatientID      string `json:"patientId"`
	Recommendation string `json:"recommendation"`
	Rationale      string `json:"rationale"`
	Confidence     int    `json:"confidence"`
	DataPoints     int    `json:"dataPoints"`
	CreatedAt      string `json:"createdAt"`
	UpdatedAt      string `json:"updatedAt"`
}
