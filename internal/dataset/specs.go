package dataset

import "csv-refine/internal/frame"

var Customers = Spec{
	Name:       "customers",
	RawFile:    "olist_customers_dataset.csv",
	OutputFile: "customers_dataset_refined.csv",
	Columns: []frame.ColumnSpec{
		{Name: "customer_id", Type: frame.Text},
		{Name: "customer_unique_id", Type: frame.Text},
		{Name: "customer_zip_code_prefix", Type: frame.Text},
		{Name: "customer_city", Type: frame.Text},
		{Name: "customer_state", Type: frame.Text},
	},
	Checks: []Check{
		{Column: "customer_zip_code_prefix", Rule: "must be a 5-digit zip prefix", OK: isZipPrefix},
		{Column: "customer_state", Rule: "must be a Brazilian state code", OK: isBrazilState},
	},
}

var Geolocation = Spec{
	Name:       "geolocation",
	RawFile:    "olist_geolocation_dataset.csv",
	OutputFile: "geolocation_dataset_refined.csv",
	Columns: []frame.ColumnSpec{
		{Name: "geolocation_zip_code_prefix", Type: frame.Text},
		{Name: "geolocation_lat", Type: frame.Float},
		{Name: "geolocation_lng", Type: frame.Float},
		{Name: "geolocation_city", Type: frame.Text},
		{Name: "geolocation_state", Type: frame.Text},
	},
	Checks: []Check{
		{Column: "geolocation_zip_code_prefix", Rule: "must be a 5-digit zip prefix", OK: isZipPrefix},
		{Column: "geolocation_state", Rule: "must be a Brazilian state code", OK: isBrazilState},
	},
}

var Orders = Spec{
	Name:       "orders",
	RawFile:    "olist_orders_dataset.csv",
	OutputFile: "orders_dataset_refined.csv",
	Columns: []frame.ColumnSpec{
		{Name: "order_id", Type: frame.Text},
		{Name: "customer_id", Type: frame.Text},
		{Name: "order_status", Type: frame.Text},
		{Name: "order_purchase_timestamp", Type: frame.Time},
		{Name: "order_approved_at", Type: frame.Time},
		{Name: "order_delivered_carrier_date", Type: frame.Time},
		{Name: "order_delivered_customer_date", Type: frame.Time},
		{Name: "order_estimated_delivery_date", Type: frame.Time},
	},
}

var OrderItems = Spec{
	Name:       "order_items",
	RawFile:    "olist_order_items_dataset.csv",
	OutputFile: "order_items_dataset_refined.csv",
	Columns: []frame.ColumnSpec{
		{Name: "order_id", Type: frame.Text},
		{Name: "order_item_id", Type: frame.Int},
		{Name: "product_id", Type: frame.Text},
		{Name: "seller_id", Type: frame.Text},
		{Name: "shipping_limit_date", Type: frame.Time},
		{Name: "price", Type: frame.Float},
		{Name: "freight_value", Type: frame.Float},
	},
	Derived: []Derivation{
		{Name: "total_value", Type: frame.Float, Fn: totalValue},
	},
}

var OrderPayments = Spec{
	Name:       "order_payments",
	RawFile:    "olist_order_payments_dataset.csv",
	OutputFile: "order_payments_dataset_refined.csv",
	Columns: []frame.ColumnSpec{
		{Name: "order_id", Type: frame.Text},
		{Name: "payment_sequential", Type: frame.Int},
		{Name: "payment_type", Type: frame.Text},
		{Name: "payment_installments", Type: frame.Int},
		{Name: "payment_value", Type: frame.Float},
	},
	Checks: []Check{
		{Column: "payment_installments", Rule: "must not be negative", OK: isNonNegativeInt},
		{Column: "payment_value", Rule: "must not be negative", OK: isNonNegativeFloat},
	},
}

var OrderReviews = Spec{
	Name:       "order_reviews",
	RawFile:    "olist_order_reviews_dataset.csv",
	OutputFile: "order_reviews_dataset_refined.csv",
	Columns: []frame.ColumnSpec{
		{Name: "review_id", Type: frame.Text},
		{Name: "order_id", Type: frame.Text},
		{Name: "review_score", Type: frame.Int},
		{Name: "review_comment_title", Type: frame.Text},
		{Name: "review_comment_message", Type: frame.Text},
		{Name: "review_creation_date", Type: frame.Time},
		{Name: "review_answer_timestamp", Type: frame.Time},
	},
	Derived: []Derivation{
		{Name: "satisfaction", Type: frame.Text, Fn: satisfaction},
	},
	Checks: []Check{
		{Column: "review_score", Rule: "must be between 1 and 5", OK: isReviewScore},
	},
}

// The raw products file misspells two column names (lenght), so the
// header is replaced positionally with the corrected names.
var Products = Spec{
	Name:       "products",
	RawFile:    "olist_products_dataset.csv",
	OutputFile: "products_dataset_refined.csv",
	HeaderOverride: []string{
		"product_id",
		"product_category_name",
		"product_name_length",
		"product_description_length",
		"product_photos_qty",
		"product_weight_g",
		"product_length_cm",
		"product_height_cm",
		"product_width_cm",
	},
	Columns: []frame.ColumnSpec{
		{Name: "product_id", Type: frame.Text},
		{Name: "product_category_name", Type: frame.Text},
		{Name: "product_name_length", Type: frame.Float},
		{Name: "product_description_length", Type: frame.Float},
		{Name: "product_photos_qty", Type: frame.Int, Nullable: true},
		{Name: "product_weight_g", Type: frame.Float},
		{Name: "product_length_cm", Type: frame.Float},
		{Name: "product_height_cm", Type: frame.Float},
		{Name: "product_width_cm", Type: frame.Float},
	},
	Derived: []Derivation{
		{Name: "product_volume_cc", Type: frame.Float, Fn: productVolume},
		{Name: "is_heavy", Type: frame.Text, Fn: heaviness},
	},
}

var Sellers = Spec{
	Name:       "sellers",
	RawFile:    "olist_sellers_dataset.csv",
	OutputFile: "sellers_dataset_refined.csv",
	Columns: []frame.ColumnSpec{
		{Name: "seller_id", Type: frame.Text},
		{Name: "seller_zip_code_prefix", Type: frame.Text},
		{Name: "seller_city", Type: frame.Text},
		{Name: "seller_state", Type: frame.Text},
	},
	Checks: []Check{
		{Column: "seller_zip_code_prefix", Rule: "must be a 5-digit zip prefix", OK: isZipPrefix},
		{Column: "seller_state", Rule: "must be a Brazilian state code", OK: isBrazilState},
	},
}

var CategoryTranslation = Spec{
	Name:       "category_translation",
	RawFile:    "product_category_name_translation.csv",
	OutputFile: "product_category_refined.csv",
	Columns: []frame.ColumnSpec{
		{Name: "product_category_name", Type: frame.Text},
		{Name: "product_category_name_english", Type: frame.Text},
	},
}

// All returns every variant in processing order.
func All() []Spec {
	return []Spec{
		Customers,
		Geolocation,
		Orders,
		OrderItems,
		OrderPayments,
		OrderReviews,
		Products,
		Sellers,
		CategoryTranslation,
	}
}

// Get returns the variant with the given name.
func Get(name string) (Spec, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}
