package ds

type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
	Diagnosis  string `json:"diagnosis"`
	RiskLevel  string `json:"riskLevel"`
	Status     string `json:"status"`
	LastUpdate string `json:"lastUpdate"`
	Avatar     string `json:"avatar"`
}
