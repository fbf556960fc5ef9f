package catalog

// AdoptionStatus define los estados posibles de una mascota.
// @Enum unadopted, adopted
type AdoptionStatus string

const (
	StatusUnadopted AdoptionStatus = "unadopted"
	StatusAdopted   AdoptionStatus = "adopted"
)

func ParseAdoptionStatus(s string) (AdoptionStatus, bool) {
	switch AdoptionStatus(s) {
	case StatusUnadopted, StatusAdopted:
		return AdoptionStatus(s), true
	default:
		return "", false
	}
}

// Gender define el sexo de la mascota.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Pet es una mascota del catálogo de adopción.
// El ID es numérico (así vive en la tabla pet del store remoto).
type Pet struct {
	ID int64

	Name    string
	Species string // dog, cat, bird, fish
	Breed   string
	Age     int
	Gender  Gender

	GeneralDescription string
	HealthInfo         string
	IsFixed            bool

	AdoptionFee    float64
	AdoptionStatus AdoptionStatus
}
