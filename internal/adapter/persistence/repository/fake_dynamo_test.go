package repository

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory table set understanding the handful of
// condition and update expressions the repositories emit.
type fakeDynamo struct {
	mu     sync.Mutex
	keys   map[string]string
	tables map[string]map[string]map[string]types.AttributeValue
	err    error
}

func newFakeDynamo(keys map[string]string) *fakeDynamo {
	return &fakeDynamo{keys: keys, tables: map[string]map[string]map[string]types.AttributeValue{}}
}

func (f *fakeDynamo) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = map[string]map[string]types.AttributeValue{}
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamo) keyOf(table string, item map[string]types.AttributeValue) string {
	if s, ok := item[f.keys[table]].(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func conditionFailed() error {
	return &types.ConditionalCheckFailedException{Message: aws.String("The conditional request failed")}
}

func numberAttr(av types.AttributeValue) (int64, bool) {
	n, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseInt(n.Value, 10, 64)
	return v, err == nil
}

func (f *fakeDynamo) checkCondition(expr *string, names map[string]string, values map[string]types.AttributeValue, existing map[string]types.AttributeValue) bool {
	if expr == nil {
		return true
	}
	e := *expr
	exists := existing != nil
	if strings.HasPrefix(e, "attribute_not_exists") {
		return !exists
	}
	if !strings.HasPrefix(e, "attribute_exists") || !exists {
		return false
	}
	if strings.Contains(e, "#gu <= :gu") {
		stored, ok := existing[names["#gu"]]
		if !ok {
			return true
		}
		have, _ := numberAttr(stored)
		want, _ := numberAttr(values[":gu"])
		return have <= want
	}
	return true
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	return &dynamodb.GetItemOutput{Item: f.table(name)[f.keyOf(name, in.Key)]}, nil
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	key := f.keyOf(name, in.Item)
	if !f.checkCondition(in.ConditionExpression, in.ExpressionAttributeNames, in.ExpressionAttributeValues, f.table(name)[key]) {
		return nil, conditionFailed()
	}
	f.table(name)[key] = in.Item
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	key := f.keyOf(name, in.Key)
	existing := f.table(name)[key]
	if !f.checkCondition(in.ConditionExpression, in.ExpressionAttributeNames, in.ExpressionAttributeValues, existing) {
		return nil, conditionFailed()
	}

	updated := map[string]types.AttributeValue{}
	for k, v := range existing {
		updated[k] = v
	}
	for k, v := range in.Key {
		updated[k] = v
	}
	for _, assignment := range strings.Split(strings.TrimPrefix(aws.ToString(in.UpdateExpression), "SET "), ",") {
		attr, value, ok := strings.Cut(assignment, "=")
		if !ok {
			continue
		}
		updated[in.ExpressionAttributeNames[strings.TrimSpace(attr)]] = in.ExpressionAttributeValues[strings.TrimSpace(value)]
	}
	f.table(name)[key] = updated

	out := &dynamodb.UpdateItemOutput{}
	if in.ReturnValues == types.ReturnValueAllNew {
		out.Attributes = updated
	}
	return out, nil
}

func (f *fakeDynamo) DeleteItem(_ context.Context, in *dynamodb.DeleteItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	delete(f.table(name), f.keyOf(name, in.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

// Query supports single-attribute equality on an index key.
func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	attr, placeholder, _ := strings.Cut(aws.ToString(in.KeyConditionExpression), "=")
	attr, placeholder = strings.TrimSpace(attr), strings.TrimSpace(placeholder)
	want, _ := in.ExpressionAttributeValues[placeholder].(*types.AttributeValueMemberS)

	out := &dynamodb.QueryOutput{}
	for _, item := range f.table(aws.ToString(in.TableName)) {
		if got, ok := item[attr].(*types.AttributeValueMemberS); ok && want != nil && got.Value == want.Value {
			out.Items = append(out.Items, item)
		}
	}
	return out, nil
}

// Scan returns one item per page so pagination is exercised.
func (f *fakeDynamo) Scan(_ context.Context, in *dynamodb.ScanInput, _ ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	name := aws.ToString(in.TableName)
	keys := make([]string, 0, len(f.table(name)))
	for k := range f.table(name) {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if in.ExclusiveStartKey != nil {
		last := f.keyOf(name, in.ExclusiveStartKey)
		for i, k := range keys {
			if k == last {
				start = i + 1
			}
		}
	}
	out := &dynamodb.ScanOutput{}
	if start < len(keys) {
		item := f.table(name)[keys[start]]
		out.Items = []map[string]types.AttributeValue{item}
		if start+1 < len(keys) {
			out.LastEvaluatedKey = map[string]types.AttributeValue{f.keys[name]: item[f.keys[name]]}
		}
	}
	return out, nil
}
