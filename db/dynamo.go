package db

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/synchro/chart"
	"github.com/jsphweid/synchro/model"
)

// DynamoLibrary stores one item per chart keyed by PK = name. The summary
// fields are duplicated as attributes so List doesn't decode every chart.
type DynamoLibrary struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoLibrary(endpoint string, table string) (*DynamoLibrary, error) {
	session, err := session.NewSession(&aws.Config{
		Region:   aws.String("localhost"),
		Endpoint: &endpoint,
	})
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("could not create a new DynamoDB session"))
	}
	return NewDynamoLibraryWithClient(dynamodb.New(session), table), nil
}

func NewDynamoLibraryWithClient(client dynamodbiface.DynamoDBAPI, table string) *DynamoLibrary {
	return &DynamoLibrary{client: client, table: table}
}

func (l *DynamoLibrary) Save(name string, c model.Chart) error {
	if !validName(name) {
		return fault.New("bad chart name "+name, fmsg.WithDesc("bad chart name", fmt.Sprintf("%q is not a valid chart name.", name)), ftag.With(ftag.InvalidArgument))
	}
	b, err := chart.Marshal(c)
	if err != nil {
		return err
	}

	item := map[string]*dynamodb.AttributeValue{
		"PK":       {S: aws.String(name)},
		"SongName": {S: aws.String(c.SongName)},
		"Artist":   {S: aws.String(c.Artist)},
		"Length":   {N: aws.String(strconv.Itoa(c.Length))},
		"NumTiles": {N: aws.String(strconv.Itoa(len(c.Tiles)))},
		"Chart":    {S: aws.String(string(b))},
	}
	_, err = l.client.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(l.table),
		Item:      item,
	})
	if err != nil {
		return fault.Wrap(err, fmsg.With("error from DynamoDB saving "+name))
	}
	return nil
}

func (l *DynamoLibrary) Get(name string) (model.Chart, error) {
	out, err := l.client.GetItem(&dynamodb.GetItemInput{
		TableName: aws.String(l.table),
		Key: map[string]*dynamodb.AttributeValue{
			"PK": {S: aws.String(name)},
		},
	})
	if err != nil {
		return model.Chart{}, fault.Wrap(err, fmsg.With("error from DynamoDB loading "+name))
	}
	if len(out.Item) == 0 || out.Item["Chart"] == nil || out.Item["Chart"].S == nil {
		return model.Chart{}, fault.New("no chart "+name, fmsg.WithDesc("chart not found", fmt.Sprintf("No chart named %q.", name)), ftag.With(ftag.NotFound))
	}
	return chart.Unmarshal([]byte(*out.Item["Chart"].S))
}

func (l *DynamoLibrary) List() ([]model.ChartSummary, error) {
	res := make([]model.ChartSummary, 0)
	input := &dynamodb.ScanInput{
		TableName:            aws.String(l.table),
		ProjectionExpression: aws.String("PK, SongName, Artist, #len, NumTiles"),
		ExpressionAttributeNames: map[string]*string{
			"#len": aws.String("Length"),
		},
	}
	err := l.client.ScanPages(input, func(page *dynamodb.ScanOutput, lastPage bool) bool {
		for _, v := range page.Items {
			res = append(res, summaryFromItem(v))
		}
		return true
	})
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("error from DynamoDB listing charts"))
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].Name < res[j].Name
	})
	return res, nil
}

func summaryFromItem(v map[string]*dynamodb.AttributeValue) model.ChartSummary {
	var s model.ChartSummary
	if v["PK"] != nil && v["PK"].S != nil {
		s.Name = *v["PK"].S
	}
	if v["SongName"] != nil && v["SongName"].S != nil {
		s.SongName = *v["SongName"].S
	}
	if v["Artist"] != nil && v["Artist"].S != nil {
		s.Artist = *v["Artist"].S
	}
	if v["Length"] != nil && v["Length"].N != nil {
		length, _ := strconv.Atoi(*v["Length"].N)
		s.Length = length
	}
	if v["NumTiles"] != nil && v["NumTiles"].N != nil {
		num, _ := strconv.Atoi(*v["NumTiles"].N)
		s.NumTiles = num
	}
	return s
}
