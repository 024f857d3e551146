package usecasecontract

// IValidator validates values that do not arrive through gin binding.
type IValidator interface {
	ValidateStruct(s interface{}) error
}
