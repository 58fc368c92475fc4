package smsactivate

import "net/url"

type Action string

const (
	ActionGetNumber    Action = "getNumber"
	ActionSetStatus    Action = "setStatus"
	ActionGetStatus    Action = "getStatus"
	ActionGetBalance   Action = "getBalance"
	ActionGetPrices    Action = "getPrices"
	ActionGetOperators Action = "getOperators"
)

type Param string

const (
	ParamAction         Param = "action"
	ParamAPIKey         Param = "api_key"
	ParamService        Param = "service"
	ParamCountry        Param = "country"
	ParamMaxPrice       Param = "maxPrice"
	ParamOperator       Param = "operator"
	ParamPhoneException Param = "phoneException"
	ParamStatus         Param = "status"
	ParamID             Param = "id"
	ParamReferral       Param = "ref"
)

type queryParam struct {
	key   Param
	value string
}

// Query is an ordered set of request parameters for a single provider action.
type Query struct {
	action Action
	params []queryParam
}

func NewQuery(action Action) *Query {
	return &Query{action: action, params: []queryParam{{ParamAction, string(action)}}}
}

func (q *Query) Action() Action {
	return q.action
}

// Set adds or replaces key.
func (q *Query) Set(key Param, value string) *Query {
	for i := range q.params {
		if q.params[i].key == key {
			q.params[i].value = value
			return q
		}
	}
	q.params = append(q.params, queryParam{key, value})
	return q
}

// SetIf adds key only when value is not empty.
func (q *Query) SetIf(key Param, value string) *Query {
	if value == "" {
		return q
	}
	return q.Set(key, value)
}

func (q *Query) Get(key Param) string {
	for _, p := range q.params {
		if p.key == key {
			return p.value
		}
	}
	return ""
}

func (q *Query) clone() *Query {
	params := make([]queryParam, len(q.params))
	copy(params, q.params)
	return &Query{action: q.action, params: params}
}

// values returns q as url.Values; api_key is replaced by mask when mask is set.
func (q *Query) values(mask string) url.Values {
	v := make(url.Values, len(q.params))
	for _, p := range q.params {
		value := p.value
		if p.key == ParamAPIKey && mask != "" {
			value = mask
		}
		v.Set(string(p.key), value)
	}
	return v
}

func (q *Query) Encode() string {
	return q.values("").Encode()
}
