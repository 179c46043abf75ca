package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"oncologyassistant/internal/app/ds"
)

// Seed - набор записей, с которым стартует Repository.
type Seed struct {
	Patients       []ds.Patient       `json:"patients"`
	TreatmentPlans []ds.TreatmentPlan `json:"treatmentPlans"`
}

// LoadSeed читает набор данных из файла. Пустой путь - DefaultSeed.
func LoadSeed(path string) (Seed, error) {
	if path == "" {
		return DefaultSeed(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}

	var seed Seed
	if err := json.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	return seed, nil
}

func DefaultSeed() Seed {
	return Seed{
		Patients: []ds.Patient{
			{
				ID:         "1",
				Name:       "Jane Smith",
				Age:        62,
				Diagnosis:  "Breast Cancer Stage II",
				RiskLevel:  "Medium",
				Status:     "Stable",
				LastUpdate: "2 days ago",
				Avatar:     "/contemplative-artist.png",
			},
			{
				ID:         "2",
				Name:       "Robert Johnson",
				Age:        71,
				Diagnosis:  "Lung Cancer Stage III",
				RiskLevel:  "High",
				Status:     "High-Risk",
				LastUpdate: "Today",
				Avatar:     "/contemplative-elder.png",
			},
			{
				ID:         "3",
				Name:       "Maria Garcia",
				Age:        54,
				Diagnosis:  "Colorectal Cancer Stage I",
				RiskLevel:  "Low",
				Status:     "Stable",
				LastUpdate: "1 week ago",
				Avatar:     "/contemplative-artist.png",
			},
			{
				ID:         "4",
				Name:       "David Lee",
				Age:        67,
				Diagnosis:  "Prostate Cancer",
				RiskLevel:  "Medium",
				Status:     "Awaiting Upload",
				LastUpdate: "3 days ago",
				Avatar:     "/thoughtful-urbanite.png",
			},
			{
				ID:         "5",
				Name:       "Sarah Williams",
				Age:        45,
				Diagnosis:  "Thyroid Cancer",
				RiskLevel:  "Low",
				Status:     "Stable",
				LastUpdate: "5 days ago",
				Avatar:     "/contemplative-artist.png",
			},
			{
				ID:         "6",
				Name:       "Michael Brown",
				Age:        59,
				Diagnosis:  "Melanoma Stage II",
				RiskLevel:  "Medium",
				Status:     "New Patient",
				LastUpdate: "Just now",
				Avatar:     "/thoughtful-urbanite.png",
			},
		},
		TreatmentPlans: []ds.TreatmentPlan{
			{
				ID:             "t1",
				PatientID:      "1",
				Recommendation: "Hormone therapy (Tamoxifen) for 5-10 years without adjuvant chemotherapy",
				Rationale:      "Patient has ER+/PR+ breast cancer with low Ki-67 proliferation index, negative lymph nodes, and low genomic recurrence score. Molecular profiling indicates low risk of recurrence with endocrine therapy alone.",
				Confidence:     87,
				DataPoints:     1240,
				CreatedAt:      "2025-04-10T14:32:00Z",
				UpdatedAt:      "2025-04-10T14:32:00Z",
			},
			{
				ID:             "t2",
				PatientID:      "2",
				Recommendation: "Combination chemotherapy (cisplatin/pemetrexed) followed by immunotherapy maintenance",
				Rationale:      "Patient has stage III non-small cell lung cancer with high PD-L1 expression. Genomic analysis shows no targetable mutations. Recent clinical trials demonstrate survival benefit with this approach.",
				Confidence:     82,
				DataPoints:     950,
				CreatedAt:      "2025-04-12T09:15:00Z",
				UpdatedAt:      "2025-04-12T09:15:00Z",
			},
			{
				ID:             "t3",
				PatientID:      "3",
				Recommendation: "Surgical resection followed by adjuvant FOLFOX chemotherapy for 3 months",
				Rationale:      "Patient has stage I colorectal cancer with microsatellite stability and low-risk features. Short-course adjuvant therapy is recommended based on recent trials showing non-inferiority to 6-month regimens.",
				Confidence:     91,
				DataPoints:     1580,
				CreatedAt:      "2025-04-08T11:20:00Z",
				UpdatedAt:      "2025-04-08T11:20:00Z",
			},
		},
	}
}
