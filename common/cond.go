package common

import "github.com/sirupsen/logrus"

func Map[T any, N any](arr []T, block func(it T) N) []N {
	retArr := make([]N, 0, len(arr))
	for index := range arr {
		retArr = append(retArr, block(arr[index]))
	}
	return retArr
}

func Filter[T any](arr []T, block func(it T) bool) []T {
	var retArr []T
	for _, it := range arr {
		if block(it) {
			retArr = append(retArr, it)
		}
	}
	return retArr
}

func Error(_ any, err error) error {
	return err
}

func Must(err error) {
	if err != nil {
		logrus.Fatal(err)
	}
}

func Must1[T any](result T, err error) T {
	if err != nil {
		logrus.Fatal(err)
	}
	return result
}
