package mocks

// mockgen rules for generating mocks for exported interfaces (reflection mode).
//go:generate sh -c "mockgen -package=index -destination=$GOPATH/src/$PACKAGE/index/index_mock.go $PACKAGE/index DocIDSet,DocIDSetIterator"
