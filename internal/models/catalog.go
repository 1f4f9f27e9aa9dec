package models

import "fmt"

// AvailableTherapies lists the nine bookable treatment categories in the
// order the booking form presents them.
func AvailableTherapies() []TherapyType {
	return []TherapyType{
		Abhyanga,
		Shirodhara,
		Panchakarma,
		Swedana,
		Nasya,
		Basti,
		Virechana,
		Vamana,
		Raktamokshana,
	}
}

// TherapyDescriptions maps each therapy to the short description shown
// alongside the booking form.
func TherapyDescriptions() map[TherapyType]string {
	return map[TherapyType]string{
		Abhyanga:      "Full body massage with warm oils to promote relaxation and circulation.",
		Shirodhara:    "Continuous pouring of warm oil on the forehead for deep mental relaxation.",
		Panchakarma:   "Complete detoxification and rejuvenation therapy program.",
		Swedana:       "Steam therapy to open pores and eliminate toxins through sweating.",
		Nasya:         "Nasal administration of medicines to clear respiratory passages.",
		Basti:         "Medicated enema therapy for colon cleansing and rejuvenation.",
		Virechana:     "Controlled purgation therapy for eliminating excess Pitta dosha.",
		Vamana:        "Therapeutic vomiting for removing excess Kapha dosha.",
		Raktamokshana: "Blood purification therapy to remove toxins from blood.",
	}
}

// ExperienceLabels are the five values the feedback form offers, best first.
func ExperienceLabels() []string {
	return []string{"Excellent", "Very Good", "Good", "Average", "Poor"}
}

// TimeSlots returns the bookable start times: every half hour from 09:00
// through 18:00.
func TimeSlots() []string {
	slots := make([]string, 0, 19)
	for hour := 9; hour <= 18; hour++ {
		slots = append(slots, fmt.Sprintf("%02d:00", hour))
		if hour < 18 {
			slots = append(slots, fmt.Sprintf("%02d:30", hour))
		}
	}
	return slots
}
