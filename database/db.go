package database

import(
    "database/sql"
    "sync"
	"github.com/jmoiron/sqlx"
    "github.com/aws/aws-sdk-go/aws/awserr"
    "github.com/aws/aws-sdk-go/service/dynamodb"
    "local/fresco/simple"
    "local/fresco/log"
)

type DB struct {
    config simple.Config
    ddb *dynamodb.DynamoDB
    c *sqlx.DB
    counterMux sync.Mutex
    counters map[string]*counter
}

func New(config simple.Config) *DB {
    return &DB{
        config: config,
        ddb: dynamodb.New(config.Session),
        c: nil,
        counterMux: sync.Mutex{},
        counters: make(map[string]*counter),
    }
}

func (db *DB) Run(initDone chan struct{}) error {
    conn, err := db.RdsConnect()
    if err != nil {
        db.errorf("Unable to connect to rdb: %s", err)
        return err
    }
    db.c = conn
    db.infof("Connected to rdb: %s", db.config.RdsHost)

    initDone <- struct{}{}
    return nil
}

func (db *DB) exec(sql string, args ...interface{}) (sql.Result, error) {
    result, err := db.c.Exec(sql, args...)
    return result, err
}

func (db *DB) formatDDBError(err error) string {
    if aerr, ok := err.(awserr.Error); ok {
        switch aerr.Code() {
        case dynamodb.ErrCodeConditionalCheckFailedException,
            dynamodb.ErrCodeProvisionedThroughputExceededException,
            dynamodb.ErrCodeResourceNotFoundException,
            dynamodb.ErrCodeTransactionConflictException,
            dynamodb.ErrCodeRequestLimitExceeded,
            dynamodb.ErrCodeInternalServerError:
            return aerr.Code() + " " + aerr.Error()
        default:
            return aerr.Error()
        }
    }
    return err.Error()
}

func (db *DB) debugf(msg string, fargs ...interface{}) {
    log.Debug(msg, fargs...)
}

func (db *DB) infof(msg string, fargs ...interface{}) {
    log.Info(msg, fargs...)
}

func (db *DB) errorf(msg string, fargs ...interface{}) {
    log.Error(msg, fargs...)
}
