package main

import (
	"fmt"
	"log"

	"github.com/varun021/Health-Tracker/internal/app/ds"
	"github.com/varun021/Health-Tracker/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type diseaseSeed struct {
	disease  ds.Disease
	symptoms map[string]int
}

func main() {
	_ = godotenv.Load()

	db, err := gorm.Open(postgres.Open(dsn.FromEnv()), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database")
	}

	// Reset the knowledge base; submissions are left alone.
	db.Exec("DELETE FROM disease_symptoms")
	db.Exec("DELETE FROM diseases")
	db.Exec("DELETE FROM symptoms")

	symptoms := []ds.Symptom{
		{Name: "Fever", Description: "Elevated body temperature"},
		{Name: "Cough", Description: "Persistent coughing"},
		{Name: "Runny Nose", Description: "Nasal discharge"},
		{Name: "Sore Throat", Description: "Pain or irritation in throat"},
		{Name: "Fatigue", Description: "Extreme tiredness"},
		{Name: "Itching", Description: "Skin irritation causing scratching"},
		{Name: "Skin Rash", Description: "Red, irritated skin patches"},
		{Name: "Redness", Description: "Skin discoloration"},
		{Name: "Chills", Description: "Feeling cold and shivering"},
		{Name: "Sweating", Description: "Excessive perspiration"},
		{Name: "Headache", Description: "Pain in head region"},
		{Name: "Nausea", Description: "Feeling of sickness"},
		{Name: "Frequent Urination", Description: "Urinating more often"},
		{Name: "Increased Thirst", Description: "Excessive thirst"},
		{Name: "Blurred Vision", Description: "Unclear vision"},
		{Name: "Slow Healing", Description: "Wounds heal slowly"},
		{Name: "High Blood Pressure", Description: "Elevated BP readings"},
		{Name: "Chest Pain", Description: "Pain in chest area"},
		{Name: "Dizziness", Description: "Feeling lightheaded"},
		{Name: "Shortness of Breath", Description: "Difficulty breathing"},
	}

	symptomByName := make(map[string]uint, len(symptoms))
	for i := range symptoms {
		if err := db.Create(&symptoms[i]).Error; err != nil {
			log.Fatalf("cant create symptom %q: %v", symptoms[i].Name, err)
		}
		symptomByName[symptoms[i].Name] = symptoms[i].ID
	}

	diseases := []diseaseSeed{
		{
			disease: ds.Disease{
				Name:          "Common Cold",
				Description:   "A viral infection of the upper respiratory tract, usually harmless and self-limiting.",
				LifestyleTips: "• Get plenty of rest (7-9 hours sleep)\n• Stay hydrated with warm fluids\n• Avoid crowded places\n• Wash hands frequently\n• Use humidifier for dry air",
				DietAdvice:    "• Drink warm water, herbal teas, and soups\n• Consume vitamin C rich foods (citrus fruits)\n• Have honey and ginger tea\n• Eat light, easily digestible foods\n• Avoid dairy if it increases mucus",
				MedicalAdvice: "• Usually resolves in 7-10 days\n• Use over-the-counter pain relievers if needed\n• Consult doctor if symptoms worsen\n• Seek help if fever exceeds 101°F\n• Get medical attention if breathing difficulty occurs",
			},
			symptoms: map[string]int{
				"Cough":       7,
				"Runny Nose":  8,
				"Sore Throat": 6,
				"Fatigue":     5,
				"Fever":       4,
			},
		},
		{
			disease: ds.Disease{
				Name:          "Fungal Infection",
				Description:   "A skin infection caused by fungi, resulting in itching, redness, and rash.",
				LifestyleTips: "• Keep affected area clean and dry\n• Wear loose, breathable clothing\n• Avoid sharing personal items\n• Change socks and underwear daily\n• Dry thoroughly after bathing",
				DietAdvice:    "• Reduce sugar intake (fungi feed on sugar)\n• Increase probiotic foods (yogurt, kefir)\n• Eat garlic (natural antifungal)\n• Include coconut oil in diet\n• Stay well hydrated",
				MedicalAdvice: "• Apply antifungal cream as prescribed\n• Complete full treatment course\n• See doctor if no improvement in 2 weeks\n• May require oral medication for severe cases\n• Prevent reinfection by following hygiene",
			},
			symptoms: map[string]int{
				"Itching":   9,
				"Skin Rash": 8,
				"Redness":   7,
			},
		},
		{
			disease: ds.Disease{
				Name:          "Malaria",
				Description:   "A serious disease transmitted by mosquitoes, causing recurring fever and chills.",
				LifestyleTips: "• Use mosquito nets while sleeping\n• Apply insect repellent\n• Wear long sleeves and pants\n• Eliminate standing water around home\n• Install window screens",
				DietAdvice:    "• Maintain high fluid intake\n• Eat easily digestible foods\n• Include iron-rich foods (spinach, beans)\n• Have fresh fruits for vitamins\n• Avoid heavy, oily foods",
				MedicalAdvice: "• SEEK IMMEDIATE MEDICAL ATTENTION\n• Requires antimalarial medication\n• Blood test needed for diagnosis\n• Hospitalization may be required\n• Complete full course of medication",
			},
			symptoms: map[string]int{
				"Fever":    10,
				"Chills":   9,
				"Sweating": 8,
				"Headache": 7,
				"Nausea":   6,
			},
		},
		{
			disease: ds.Disease{
				Name:          "Diabetes",
				Description:   "A chronic condition affecting blood sugar regulation, requiring ongoing management.",
				LifestyleTips: "• Exercise regularly (30 min daily)\n• Monitor blood sugar levels\n• Maintain healthy weight\n• Manage stress through meditation\n• Get adequate sleep\n• Quit smoking",
				DietAdvice:    "• Follow low glycemic index diet\n• Eat regular, balanced meals\n• Include whole grains and fiber\n• Limit simple sugars and carbs\n• Choose lean proteins\n• Eat plenty of vegetables",
				MedicalAdvice: "• Regular doctor checkups essential\n• May require insulin or oral medications\n• Monitor for complications\n• Get eye and foot exams annually\n• Keep emergency glucose tablets\n• Wear medical ID bracelet",
			},
			symptoms: map[string]int{
				"Frequent Urination": 9,
				"Increased Thirst":   8,
				"Blurred Vision":     7,
				"Fatigue":            7,
				"Slow Healing":       6,
			},
		},
		{
			disease: ds.Disease{
				Name:          "Hypertension",
				Description:   "High blood pressure that can lead to serious complications if left untreated.",
				LifestyleTips: "• Reduce sodium intake\n• Exercise regularly (cardio activities)\n• Maintain healthy weight (BMI 18.5-24.9)\n• Limit alcohol consumption\n• Quit smoking\n• Manage stress effectively",
				DietAdvice:    "• Follow DASH diet (low sodium)\n• Eat potassium-rich foods (bananas)\n• Include leafy greens and berries\n• Choose whole grains\n• Limit processed foods\n• Reduce caffeine intake",
				MedicalAdvice: "• Monitor blood pressure regularly at home\n• Take prescribed medications consistently\n• Never skip medications without doctor advice\n• Regular medical checkups required\n• Watch for warning signs (severe headache)\n• Emergency care if BP extremely high",
			},
			symptoms: map[string]int{
				"High Blood Pressure": 10,
				"Headache":            7,
				"Dizziness":           6,
				"Chest Pain":          8,
				"Shortness of Breath": 7,
			},
		},
	}

	var pairs int
	for i := range diseases {
		d := &diseases[i]
		if err := db.Create(&d.disease).Error; err != nil {
			log.Fatalf("cant create disease %q: %v", d.disease.Name, err)
		}
		for name, weight := range d.symptoms {
			symptomID, ok := symptomByName[name]
			if !ok {
				log.Fatalf("unknown symptom %q for disease %q", name, d.disease.Name)
			}
			link := ds.DiseaseSymptom{
				DiseaseID: d.disease.ID,
				SymptomID: symptomID,
				Weight:    weight,
			}
			if err := db.Create(&link).Error; err != nil {
				log.Fatalf("cant link %q to %q: %v", name, d.disease.Name, err)
			}
			pairs++
		}
	}

	fmt.Printf("seeded %d symptoms, %d diseases, %d weights\n", len(symptoms), len(diseases), pairs)
}
