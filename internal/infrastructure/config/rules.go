package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/policy"
)

// RulesFile is the on-disk layout of the keyword catalog. Any list left out
// keeps its built-in default; an explicit empty list disables the rule.
type RulesFile struct {
	Transaction TransactionRules `yaml:"transaction"`
	Product     ProductRules     `yaml:"product"`
	Seller      SellerRules      `yaml:"seller"`
}

// TransactionRules overrides the transaction keyword sets.
type TransactionRules struct {
	CryptoKeywords        []string `yaml:"crypto_keywords"`
	CrossBorderKeywords   []string `yaml:"cross_border_keywords"`
	AnonymizerKeywords    []string `yaml:"anonymizer_keywords"`
	UnknownDeviceKeywords []string `yaml:"unknown_device_keywords"`
}

// ProductRules overrides the product keyword sets.
type ProductRules struct {
	ElectronicsCategory *string  `yaml:"electronics_category"`
	LuxuryBrands        []string `yaml:"luxury_brands"`
	CounterfeitTerms    []string `yaml:"counterfeit_terms"`
}

// SellerRules overrides seller matching.
type SellerRules struct {
	HeadquartersTaxIDSuffix *string `yaml:"headquarters_tax_id_suffix"`
}

// LoadCatalog reads a YAML rules file on top of the default catalog. An
// empty path returns the defaults.
func LoadCatalog(path string) (policy.Catalog, error) {
	if path == "" {
		return policy.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return policy.Catalog{}, fmt.Errorf("failed to read rules file: %w", err)
	}

	catalog, err := ParseCatalog(data)
	if err != nil {
		return policy.Catalog{}, fmt.Errorf("failed to parse rules file %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes YAML rules over the default catalog. Unknown keys
// are rejected so a typo cannot silently leave a default in place.
func ParseCatalog(data []byte) (policy.Catalog, error) {
	var file RulesFile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return policy.Catalog{}, err
	}

	return file.Apply(policy.DefaultCatalog()), nil
}

// Apply overlays the file on base.
func (f RulesFile) Apply(base policy.Catalog) policy.Catalog {
	c := base

	override(&c.CryptoKeywords, f.Transaction.CryptoKeywords)
	override(&c.CrossBorderKeywords, f.Transaction.CrossBorderKeywords)
	override(&c.AnonymizerKeywords, f.Transaction.AnonymizerKeywords)
	override(&c.UnknownDeviceKeywords, f.Transaction.UnknownDeviceKeywords)
	override(&c.LuxuryBrands, f.Product.LuxuryBrands)
	override(&c.CounterfeitTerms, f.Product.CounterfeitTerms)

	if f.Product.ElectronicsCategory != nil {
		c.ElectronicsCategory = *f.Product.ElectronicsCategory
	}
	if f.Seller.HeadquartersTaxIDSuffix != nil {
		c.HeadquartersTaxIDSuffix = *f.Seller.HeadquartersTaxIDSuffix
	}

	return c
}

func override(dst *[]string, src []string) {
	if src != nil {
		*dst = src
	}
}
