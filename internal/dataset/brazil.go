package dataset

// Brazilian vocabularies shared by the validation checks and the seeder.

// BrazilStates lists the 27 federative unit codes.
var BrazilStates = []string{
	"AC", "AL", "AP", "AM", "BA", "CE", "DF", "ES", "GO",
	"MA", "MT", "MS", "MG", "PA", "PB", "PR", "PE", "PI",
	"RJ", "RN", "RS", "RO", "RR", "SC", "SP", "SE", "TO",
}

// BrazilCities uses the lowercase unaccented spelling the raw dataset uses.
var BrazilCities = []string{
	"sao paulo",
	"rio de janeiro",
	"belo horizonte",
	"brasilia",
	"curitiba",
	"campinas",
	"porto alegre",
	"salvador",
	"guarulhos",
	"sao bernardo do campo",
	"niteroi",
	"santo andre",
	"osasco",
	"santos",
	"goiania",
	"sao jose dos campos",
	"fortaleza",
	"sorocaba",
	"recife",
	"florianopolis",
}

var OrderStatuses = []string{
	"delivered",
	"shipped",
	"canceled",
	"unavailable",
	"invoiced",
	"processing",
	"created",
	"approved",
}

var PaymentTypes = []string{
	"credit_card",
	"boleto",
	"voucher",
	"debit_card",
}

// Category pairs a Portuguese category name with its English translation.
type Category struct {
	Portuguese string
	English    string
}

var Categories = []Category{
	{"beleza_saude", "health_beauty"},
	{"informatica_acessorios", "computers_accessories"},
	{"automotivo", "auto"},
	{"cama_mesa_banho", "bed_bath_table"},
	{"moveis_decoracao", "furniture_decor"},
	{"esporte_lazer", "sports_leisure"},
	{"perfumaria", "perfumery"},
	{"utilidades_domesticas", "housewares"},
	{"telefonia", "telephony"},
	{"relogios_presentes", "watches_gifts"},
	{"alimentos_bebidas", "food_drink"},
	{"bebes", "baby"},
	{"papelaria", "stationery"},
	{"brinquedos", "toys"},
	{"fashion_bolsas_e_acessorios", "fashion_bags_accessories"},
}
