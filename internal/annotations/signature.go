package annotations

import (
	"github.com/toyz/textsig/internal/errors"
	"github.com/toyz/textsig/internal/models"
)

// BuildParameterList converts a parsed signature list into a validated
// ParameterList. Every declared default is opaque: the expression text is
// never turned into a rendered value.
func BuildParameterList(list *SignatureList) (*models.ParameterList, error) {
	var params []models.Parameter
	category := models.CategoryPositionalOrKeyword
	sawSlash, sawStar, sawVarKeyword, bareStar := false, false, false, false
	keywordOnlyAfterStar := 0

	if list == nil {
		return models.NewParameterList()
	}

	for i, item := range list.Items {
		switch {
		case item.Slash:
			if sawSlash {
				return nil, errors.NewOrderingError("/", i, "'/' may appear only once")
			}
			if sawStar || sawVarKeyword {
				return nil, errors.NewOrderingError("/", i, "'/' must come before '*args', '*' and '**kwargs'")
			}
			if len(params) == 0 {
				return nil, errors.NewOrderingError("/", i, "at least one parameter must precede '/'")
			}
			for j := range params {
				if params[j].Category == models.CategoryPositionalOrKeyword {
					params[j].Category = models.CategoryPositionalOnly
				}
			}
			sawSlash = true

		case item.VarKeyword != nil:
			sawVarKeyword = true
			params = append(params, models.NewParameter(*item.VarKeyword, models.CategoryVarKeyword, models.NoDefault()))

		case item.VarPositional != nil:
			if sawStar {
				return nil, errors.NewOrderingError("*", i, "only one '*' or '*args' may appear")
			}
			sawStar = true
			if item.VarPositional.Name != nil {
				params = append(params, models.NewParameter(*item.VarPositional.Name, models.CategoryVarPositional, models.NoDefault()))
			} else {
				bareStar = true
			}
			category = models.CategoryKeywordOnly

		case item.Param != nil:
			def := models.NoDefault()
			if item.Param.Default != nil {
				def = models.OpaqueDefault()
			}
			if category == models.CategoryKeywordOnly {
				keywordOnlyAfterStar++
			}
			params = append(params, models.NewParameter(item.Param.Name, category, def))
		}
	}

	if bareStar && keywordOnlyAfterStar == 0 {
		return nil, errors.NewValidationError("signature", "keyword-only parameters after a bare '*'", "none").
			WithSuggestion("remove the '*' or add a keyword-only parameter after it")
	}

	return models.NewParameterList(params...)
}
