package entities

// Dataset - полный набор записей, загружаемый при старте.
type Dataset struct {
	Clients   []Client    `yaml:"clients" validate:"dive"`
	Equipment []Equipment `yaml:"equipment" validate:"dive"`
	Handovers []Handover  `yaml:"handovers" validate:"dive"`
	Tasks     []Task      `yaml:"tasks" validate:"dive"`
}
