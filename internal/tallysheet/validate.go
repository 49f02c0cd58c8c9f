package tallysheet

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gambutlab/tallysheet/internal/models"
)

// NumericRule declares that a field, when supplied, must parse as a number.
type NumericRule struct {
	Field   string
	Integer bool
}

// NumericRules covers the measurement fields of the form. Fields outside this
// table (directions, month names, species, free text) are intentionally
// unconstrained.
var NumericRules = []NumericRule{
	{Field: "latitude_derajat"},
	{Field: "latitude_menit"},
	{Field: "latitude_detik"},
	{Field: "longitude_derajat"},
	{Field: "longitude_menit"},
	{Field: "longitude_detik"},
	{Field: "elevasi_lahan"},
	{Field: "kedalaman_air_tanah"},
	{Field: "genangan"},
	{Field: "banjir_lama_hari", Integer: true},
	{Field: "banjir_ketinggian_air"},
	{Field: "tinggi_muka_air_saluran"},
	{Field: "kualitas_air_tanah_ph"},
	{Field: "kualitas_air_saluran_ph"},
	{Field: "kualitas_air_tanah_ec"},
	{Field: "kualitas_air_saluran_ec"},
	{Field: "kualitas_air_tanah_tds"},
	{Field: "kualitas_air_saluran_tds"},
	{Field: "substratum_tanah_liat_ph"},
	{Field: "substratum_tanah_liat_ec"},
	{Field: "ketebalan_gambut_cm"},
	{Field: "kondisi_tanaman_subsiden_cm"},
	{Field: "hujan_lama_kejadian_jam"},
	{Field: "porositas_bobot_isi"},
	{Field: "kelengasan_kadar_air"},
	{Field: "c_organik"},
}

// ValidateNumericFields checks every rule against the submitted fields.
// Blank fields are always legal; they render as placeholders instead. All
// failures are collected so the caller can report every bad field at once.
func ValidateNumericFields(fields models.Fields, rules []NumericRule) []models.FieldError {
	var errs []models.FieldError
	for _, rule := range rules {
		s := strings.TrimSpace(fields.Get(rule.Field))
		if s == "" {
			continue
		}
		kind := "number"
		var err error
		if rule.Integer {
			kind = "integer"
			_, err = strconv.Atoi(s)
		} else {
			_, err = strconv.ParseFloat(s, 64)
		}
		if err != nil {
			errs = append(errs, models.FieldError{
				Field: rule.Field,
				Msg:   fmt.Sprintf("Expected %s but got '%s'", kind, s),
			})
		}
	}
	return errs
}
