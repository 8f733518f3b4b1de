package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"csv-refine/internal/dataset"
	"csv-refine/internal/errors"
	"csv-refine/internal/frame"
	"csv-refine/internal/logging"
)

// Seeder writes a synthetic raw dataset shaped like the real one, so the
// pipeline can be exercised without the real files. Generated ids are
// pooled and reused across tables to keep references coherent.
type Seeder struct {
	faker *gofakeit.Faker

	customerIDs []string
	sellerIDs   []string
	productIDs  []string
	orders      []seededOrder
}

type seededOrder struct {
	id       string
	status   string
	purchase time.Time
	// zero when the order never reached the customer
	delivered time.Time
}

// NewSeeder returns a seeder. The same seed reproduces the same dataset;
// zero seeds from the clock.
func NewSeeder(seed int64) *Seeder {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Seeder{faker: gofakeit.New(seed)}
}

// Tables are generated parents first so child rows always have ids to
// reference, regardless of which files were requested.
var seedSequence = []string{
	"customers",
	"geolocation",
	"sellers",
	"category_translation",
	"products",
	"orders",
	"order_items",
	"order_payments",
	"order_reviews",
}

// The real products file ships these broken spellings; reproduce them.
var rawProductsHeader = []string{
	"product_id",
	"product_category_name",
	"product_name_lenght",
	"product_description_lenght",
	"product_photos_qty",
	"product_weight_g",
	"product_length_cm",
	"product_height_cm",
	"product_width_cm",
}

// Seed writes raw files for the given variants into dir. Count sets the
// row count of the parent tables; child tables (items, payments, reviews)
// follow from the generated orders.
func (s *Seeder) Seed(dir string, specs []dataset.Spec, count int, log *zap.SugaredLogger, onProgress func()) error {
	if log == nil {
		log = logging.Nop()
	}
	if count <= 0 {
		count = 100
	}

	requested := make(map[string]bool, len(specs))
	for _, spec := range specs {
		requested[spec.Name] = true
	}

	for _, name := range seedSequence {
		spec, ok := dataset.Get(name)
		if !ok {
			continue
		}
		header, rows := s.generate(spec, count)
		if !requested[spec.Name] {
			continue
		}
		path := filepath.Join(dir, spec.RawFile)
		if err := writeRaw(path, header, rows); err != nil {
			return err
		}
		log.Infow("seeded raw file", "dataset", spec.Name, "rows", len(rows), "path", path)
		if onProgress != nil {
			onProgress()
		}
	}
	return nil
}

func (s *Seeder) generate(spec dataset.Spec, count int) ([]string, [][]string) {
	header := lo.Map(spec.Columns, func(c frame.ColumnSpec, _ int) string {
		return c.Name
	})
	switch spec.Name {
	case "customers":
		return header, s.customers(count)
	case "geolocation":
		return header, s.geolocation(count)
	case "sellers":
		return header, s.sellers(count)
	case "category_translation":
		return header, s.categories()
	case "products":
		return rawProductsHeader, s.products(count)
	case "orders":
		return header, s.orderRows(count)
	case "order_items":
		return header, s.itemRows()
	case "order_payments":
		return header, s.paymentRows()
	case "order_reviews":
		return header, s.reviewRows()
	}
	return header, nil
}

func (s *Seeder) customers(n int) [][]string {
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		id := s.hexID()
		s.customerIDs = append(s.customerIDs, id)
		city, state := s.place()
		rows = append(rows, []string{id, s.hexID(), s.zipPrefix(), city, state})
	}
	return rows
}

func (s *Seeder) geolocation(n int) [][]string {
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		city, state := s.place()
		rows = append(rows, []string{
			s.zipPrefix(),
			frame.FormatCell(s.faker.Float64Range(-33.75, 5.25)),
			frame.FormatCell(s.faker.Float64Range(-73.9, -34.8)),
			city,
			state,
		})
	}
	return rows
}

// roughly one seller per ten customers
func (s *Seeder) sellers(n int) [][]string {
	n = n / 10
	if n < 1 {
		n = 1
	}
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		id := s.hexID()
		s.sellerIDs = append(s.sellerIDs, id)
		city, state := s.place()
		rows = append(rows, []string{id, s.zipPrefix(), city, state})
	}
	return rows
}

func (s *Seeder) categories() [][]string {
	rows := make([][]string, 0, len(dataset.Categories))
	for _, c := range dataset.Categories {
		rows = append(rows, []string{c.Portuguese, c.English})
	}
	return rows
}

func (s *Seeder) products(n int) [][]string {
	names := lo.Map(dataset.Categories, func(c dataset.Category, _ int) string {
		return c.Portuguese
	})
	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		id := s.hexID()
		s.productIDs = append(s.productIDs, id)

		category := s.faker.RandomString(names)
		if s.faker.Number(1, 100) <= 2 {
			category = ""
		}
		photos := strconv.Itoa(s.faker.Number(1, 6))
		if s.faker.Number(1, 100) <= 10 {
			photos = ""
		}
		weight := frame.FormatCell(float64(s.faker.Number(50, 30050)))
		if s.faker.Number(1, 100) == 1 {
			weight = "0"
		}
		rows = append(rows, []string{
			id,
			category,
			frame.FormatCell(float64(s.faker.Number(20, 64))),
			frame.FormatCell(float64(s.faker.Number(100, 3990))),
			photos,
			weight,
			frame.FormatCell(float64(s.faker.Number(2, 105))),
			frame.FormatCell(float64(s.faker.Number(2, 105))),
			frame.FormatCell(float64(s.faker.Number(2, 105))),
		})
	}
	return rows
}

func (s *Seeder) orderRows(n int) [][]string {
	start := time.Date(2016, 9, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2018, 8, 29, 23, 59, 59, 0, time.UTC)

	rows := make([][]string, 0, n)
	for i := 0; i < n; i++ {
		id := s.hexID()
		purchase := s.faker.DateRange(start, end)
		status := "delivered"
		if s.faker.Number(1, 100) > 90 {
			status = s.faker.RandomString(dataset.OrderStatuses)
		}

		approved := purchase.Add(time.Duration(s.faker.Number(10, 2880)) * time.Minute)
		carrier := approved.Add(time.Duration(s.faker.Number(12, 120)) * time.Hour)
		delivered := carrier.Add(time.Duration(s.faker.Number(24, 480)) * time.Hour)
		estimated := midnight(purchase.AddDate(0, 0, s.faker.Number(15, 40)))

		approvedCell := fmtTime(approved)
		carrierCell := fmtTime(carrier)
		deliveredCell := fmtTime(delivered)
		switch status {
		case "created", "canceled", "unavailable":
			carrierCell, deliveredCell = "", ""
			if status == "created" {
				approvedCell = ""
			}
			delivered = time.Time{}
		case "delivered":
		default:
			deliveredCell = ""
			delivered = time.Time{}
		}

		s.orders = append(s.orders, seededOrder{id: id, status: status, purchase: purchase, delivered: delivered})
		rows = append(rows, []string{
			id,
			s.faker.RandomString(s.customerIDs),
			status,
			fmtTime(purchase),
			approvedCell,
			carrierCell,
			deliveredCell,
			fmtTime(estimated),
		})
	}
	return rows
}

func (s *Seeder) itemRows() [][]string {
	var rows [][]string
	for _, o := range s.orders {
		n := s.faker.Number(1, 3)
		for item := 1; item <= n; item++ {
			rows = append(rows, []string{
				o.id,
				strconv.Itoa(item),
				s.faker.RandomString(s.productIDs),
				s.faker.RandomString(s.sellerIDs),
				fmtTime(o.purchase.AddDate(0, 0, s.faker.Number(3, 10))),
				frame.FormatCell(s.faker.Price(9.9, 899.9)),
				frame.FormatCell(s.faker.Price(7.39, 81.2)),
			})
		}
	}
	return rows
}

func (s *Seeder) paymentRows() [][]string {
	var rows [][]string
	for _, o := range s.orders {
		n := 1
		if s.faker.Number(1, 100) <= 15 {
			n = 2
		}
		for seq := 1; seq <= n; seq++ {
			ptype := s.faker.RandomString(dataset.PaymentTypes)
			installments := 1
			if ptype == "credit_card" {
				installments = s.faker.Number(1, 10)
			}
			rows = append(rows, []string{
				o.id,
				strconv.Itoa(seq),
				ptype,
				strconv.Itoa(installments),
				frame.FormatCell(s.faker.Price(24.9, 1510.0)),
			})
		}
	}
	return rows
}

func (s *Seeder) reviewRows() [][]string {
	var rows [][]string
	for _, o := range s.orders {
		if s.faker.Number(1, 100) > 85 {
			continue
		}
		title, message := "", ""
		if s.faker.Number(1, 100) <= 12 {
			title = s.faker.Sentence(3)
		}
		if s.faker.Number(1, 100) <= 40 {
			message = s.faker.Sentence(9)
		}
		base := o.delivered
		if base.IsZero() {
			base = o.purchase.AddDate(0, 0, 12)
		}
		creation := midnight(base.AddDate(0, 0, 1))
		answer := creation.Add(time.Duration(s.faker.Number(26, 96)) * time.Hour)
		rows = append(rows, []string{
			s.hexID(),
			o.id,
			strconv.Itoa(s.faker.Number(1, 5)),
			title,
			message,
			fmtTime(creation),
			fmtTime(answer),
		})
	}
	return rows
}

// hexID mimics the dataset's 32-char hex identifiers.
func (s *Seeder) hexID() string {
	return strings.ReplaceAll(s.faker.UUID(), "-", "")
}

func (s *Seeder) zipPrefix() string {
	return fmt.Sprintf("%05d", s.faker.Number(1001, 99980))
}

func (s *Seeder) place() (string, string) {
	return s.faker.RandomString(dataset.BrazilCities), s.faker.RandomString(dataset.BrazilStates)
}

func fmtTime(t time.Time) string {
	return t.Format(frame.TimeLayout)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func writeRaw(path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, errors.IO, "creating seed directory for %s", path)
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.IO, "creating %s", path)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return errors.Wrap(err, errors.IO, "%s: writing header", path)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return errors.Wrap(err, errors.IO, "%s: writing row", path)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errors.Wrap(err, errors.IO, "%s: flushing", path)
	}
	return nil
}
