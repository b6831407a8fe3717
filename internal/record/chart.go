package record

import (
	"strconv"

	"github.com/cleared-dev/sie/internal/model"
	"github.com/cleared-dev/sie/internal/post"
	"github.com/cleared-dev/sie/internal/scalar"
)

// #KONTO account name
const (
	colAccountNumber = 0
	colAccountName   = 1
)

// AccountFromFields maps #KONTO fields.
func AccountFromFields(fields []string) (model.Account, error) {
	if err := need(LabelAccount, fields, 1); err != nil {
		return model.Account{}, err
	}
	return model.Account{
		Number: fields[colAccountNumber],
		Name:   at(fields, colAccountName),
	}, nil
}

// AccountToFields maps an account to #KONTO fields.
func AccountToFields(a model.Account) []post.Field {
	return post.Strings(a.Number, a.Name)
}

// AccountTypeFromFields maps #KTYP fields.
func AccountTypeFromFields(fields []string) (string, model.AccountType, error) {
	if err := need(LabelAccountType, fields, 2); err != nil {
		return "", "", err
	}
	t := model.AccountType(fields[1])
	if !t.Valid() {
		return "", "", &scalar.MalformedError{Field: name(LabelAccountType, "type"), Kind: "account type", Value: fields[1]}
	}
	return fields[0], t, nil
}

// AccountTypeToFields maps an account to #KTYP fields.
func AccountTypeToFields(a model.Account) []post.Field {
	return post.Strings(a.Number, string(a.Type))
}

// UnitFromFields maps #ENHET fields.
func UnitFromFields(fields []string) (string, string, error) {
	if err := need(LabelUnit, fields, 2); err != nil {
		return "", "", err
	}
	return fields[0], fields[1], nil
}

// UnitToFields maps an account to #ENHET fields.
func UnitToFields(a model.Account) []post.Field {
	return post.Strings(a.Number, a.Unit)
}

// ClassificationFromFields maps #SRU fields.
func ClassificationFromFields(fields []string) (model.ClassificationCode, error) {
	if err := need(LabelSRU, fields, 2); err != nil {
		return model.ClassificationCode{}, err
	}
	code, err := scalar.Int(name(LabelSRU, "code"), fields[1])
	if err != nil {
		return model.ClassificationCode{}, err
	}
	return model.ClassificationCode{Account: fields[0], Code: code}, nil
}

// ClassificationToFields maps a code to #SRU fields.
func ClassificationToFields(c model.ClassificationCode) []post.Field {
	return post.Strings(c.Account, strconv.Itoa(c.Code))
}

// DimensionFromFields maps #DIM fields.
func DimensionFromFields(fields []string) (model.Dimension, error) {
	if err := need(LabelDimension, fields, 1); err != nil {
		return model.Dimension{}, err
	}
	n, err := scalar.Int(name(LabelDimension, "dimension"), fields[0])
	if err != nil {
		return model.Dimension{}, err
	}
	return model.Dimension{Number: n, Name: at(fields, 1)}, nil
}

// DimensionToFields maps a dimension to #DIM fields.
func DimensionToFields(d model.Dimension) []post.Field {
	return post.Strings(strconv.Itoa(d.Number), d.Name)
}

// #UNDERDIM dimension name super
const (
	colSubNumber = 0
	colSubName   = 1
	colSubSuper  = 2
)

// SubDimensionFromFields maps #UNDERDIM fields.
func SubDimensionFromFields(fields []string) (model.SubDimension, error) {
	if err := need(LabelSubDim, fields, 3); err != nil {
		return model.SubDimension{}, err
	}
	n, err := scalar.Int(name(LabelSubDim, "dimension"), fields[colSubNumber])
	if err != nil {
		return model.SubDimension{}, err
	}
	super, err := scalar.Int(name(LabelSubDim, "super dimension"), fields[colSubSuper])
	if err != nil {
		return model.SubDimension{}, err
	}
	return model.SubDimension{Number: n, Super: super, Name: fields[colSubName]}, nil
}

// SubDimensionToFields maps a sub-dimension to #UNDERDIM fields.
func SubDimensionToFields(d model.SubDimension) []post.Field {
	return post.Strings(strconv.Itoa(d.Number), d.Name, strconv.Itoa(d.Super))
}

// ObjectFromFields maps #OBJEKT fields: dimension object name.
func ObjectFromFields(fields []string) (model.Object, error) {
	if err := need(LabelObject, fields, 2); err != nil {
		return model.Object{}, err
	}
	dim, err := scalar.Int(name(LabelObject, "dimension"), fields[0])
	if err != nil {
		return model.Object{}, err
	}
	return model.Object{Dimension: dim, Number: fields[1], Name: at(fields, 2)}, nil
}

// ObjectToFields maps an object to #OBJEKT fields.
func ObjectToFields(o model.Object) []post.Field {
	return post.Strings(strconv.Itoa(o.Dimension), o.Number, o.Name)
}
