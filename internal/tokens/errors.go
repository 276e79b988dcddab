package tokens

import "errors"

var ErrTokenExpired = errors.New("[tokens]: token expired")
