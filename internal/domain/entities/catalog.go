package entities

// Product is a pharmacy item as shown on the product detail screen
type Product struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Price         float64  `json:"price" yaml:"price"`
	OriginalPrice float64  `json:"original_price,omitempty" yaml:"original_price"`
	Rating        float64  `json:"rating" yaml:"rating"`
	Reviews       int      `json:"reviews" yaml:"reviews"`
	Seller        string   `json:"seller,omitempty" yaml:"seller"`
	InStock       bool     `json:"in_stock" yaml:"in_stock"`
	Description   string   `json:"description" yaml:"description"`
	Features      []string `json:"features" yaml:"features"`
	Dosage        string   `json:"dosage,omitempty" yaml:"dosage"`
	MinOrderValue float64  `json:"min_order_value,omitempty" yaml:"min_order_value"`
}

// LabPackage is a bundled set of lab tests
type LabPackage struct {
	ID              string  `json:"id" yaml:"id"`
	Title           string  `json:"title" yaml:"title"`
	Description     string  `json:"description" yaml:"description"`
	TestCount       int     `json:"test_count" yaml:"test_count"`
	ReportTime      string  `json:"report_time" yaml:"report_time"`
	OriginalPrice   float64 `json:"original_price" yaml:"original_price"`
	DiscountedPrice float64 `json:"discounted_price" yaml:"discounted_price"`
}

// SubscriptionPlan is a membership tier
type SubscriptionPlan struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Price       float64  `json:"price" yaml:"price"`
	Duration    string   `json:"duration" yaml:"duration"`
	Description string   `json:"description" yaml:"description"`
	Features    []string `json:"features" yaml:"features"`
	Featured    bool     `json:"featured" yaml:"featured"`
	TrialDays   int      `json:"trial_days,omitempty" yaml:"trial_days"`
	ButtonText  string   `json:"button_text" yaml:"button_text"`
}

// Language is a selectable UI language
type Language struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Flag string `json:"flag" yaml:"flag"`
}
