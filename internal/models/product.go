package models

// Product is a known beer with its declared strength and style
type Product struct {
	// Name is the product name as shown to the user
	Name string `yaml:"name"`

	// AlcoholPercentage is the declared strength, possibly a range
	AlcoholPercentage string `yaml:"alcohol_percentage"`

	// Style is the beer style label
	Style string `yaml:"style"`

	// SafeAmountA is the free-text serving advice for ProfileA
	SafeAmountA string `yaml:"safe_amount_male"`

	// SafeAmountB is the free-text serving advice for ProfileB
	SafeAmountB string `yaml:"safe_amount_female"`
}
