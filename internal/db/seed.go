package db

import "github.com/erazemk/cardledger/internal/model"

// DefaultCards is the card master list a new database starts with.
var DefaultCards = []model.Card{
	{Number: "7340", Type: "SBI"},
	{Number: "7357", Type: "SBI"},
	{Number: "7373", Type: "SBI"},
	{Number: "7365", Type: "SBI"},
	{Number: "2448", Type: "SBI"},
	{Number: "9207", Type: "SBI"},
	{Number: "0359", Type: "SBI"},
	{Number: "8431", Type: "SBI"},
	{Number: "0618", Type: "SBI"},
	{Number: "1285", Type: "SBI"},
	{Number: "1277", Type: "SBI"},
	{Number: "1293", Type: "SBI"},
	{Number: "7524", Type: "SBI"},
	{Number: "0358", Type: "SBI"},
	{Number: "0341", Type: "SBI"},
	{Number: "7261", Type: "SBI"},
	{Number: "7056", Type: "SBI"},
	{Number: "1914", Type: "SBI"},
	{Number: "1906", Type: "SBI"},
	{Number: "9920", Type: "SBI"},
	{Number: "2748", Type: "SBI"},
	{Number: "6184", Type: "SBI"},
	{Number: "5994", Type: "SBI"},
	{Number: "5986", Type: "SBI"},
	{Number: "4544", Type: "SBI"},
	{Number: "5152", Type: "SBI"},
	{Number: "5160", Type: "SBI"},
	{Number: "5178", Type: "SBI"},
	{Number: "7005", Type: "ICICI"},
	{Number: "7104", Type: "ICICI"},
	{Number: "4001", Type: "ICICI"},
	{Number: "4100", Type: "ICICI"},
	{Number: "0000", Type: "ICICI"},
	{Number: "0109", Type: "ICICI"},
	{Number: "1006", Type: "ICICI"},
	{Number: "1105", Type: "ICICI"},
	{Number: "3007", Type: "ICICI"},
	{Number: "3106", Type: "ICICI"},
	{Number: "9002", Type: "ICICI"},
	{Number: "9101", Type: "ICICI"},
	{Number: "70103", Type: "ICICI"},
	{Number: "70004", Type: "ICICI"},
	{Number: "60007", Type: "ICICI"},
	{Number: "7003", Type: "ICICI"},
	{Number: "7102", Type: "ICICI"},
	{Number: "0003", Type: "ICICI"},
	{Number: "8001", Type: "ICICI"},
	{Number: "9003", Type: "ICICI"},
	{Number: "9009", Type: "ICICI"},
	{Number: "9108", Type: "ICICI"},
	{Number: "6004", Type: "ICICI"},
	{Number: "6103", Type: "ICICI"},
	{Number: "7004", Type: "ICICI"},
	{Number: "0006", Type: "ICICI"},
	{Number: "8003", Type: "ICICI"},
	{Number: "8201", Type: "ICICI"},
	{Number: "9000", Type: "ICICI"},
	{Number: "9109", Type: "ICICI"},
	{Number: "9208", Type: "ICICI"},
	{Number: "4007", Type: "ICICI"},
	{Number: "4106", Type: "ICICI"},
	{Number: "8209", Type: "ICICI"},
	{Number: "8100", Type: "ICICI"},
	{Number: "4205", Type: "ICICI"},
	{Number: "6001", Type: "ICICI"},
	{Number: "7009", Type: "ICICI"},
	{Number: "7900", Type: "HDFC"},
	{Number: "9662", Type: "HDFC"},
	{Number: "0033", Type: "HDFC"},
	{Number: "5025", Type: "HDFC"},
	{Number: "7719", Type: "HDFC"},
	{Number: "3599", Type: "HDFC"},
	{Number: "7342", Type: "HDFC"},
	{Number: "6368", Type: "HDFC"},
	{Number: "1533", Type: "HDFC"},
	{Number: "4405", Type: "HDFC"},
	{Number: "0989", Type: "HDFC"},
	{Number: "5521", Type: "HDFC"},
	{Number: "8122", Type: "HDFC"},
	{Number: "6837", Type: "HDFC"},
	{Number: "9255", Type: "KOTAK"},
	{Number: "9248", Type: "KOTAK"},
	{Number: "2057", Type: "KOTAK"},
	{Number: "2874", Type: "KOTAK"},
	{Number: "3375", Type: "KOTAK"},
	{Number: "4668", Type: "AXIS"},
	{Number: "8230", Type: "AXIS"},
	{Number: "5058", Type: "AXIS"},
	{Number: "5790", Type: "AXIS"},
	{Number: "9873", Type: "AXIS"},
	{Number: "0861", Type: "AXIS"},
	{Number: "1227", Type: "AXIS"},
	{Number: "5808", Type: "AXIS"},
	{Number: "6988", Type: "AXIS"},
	{Number: "0853", Type: "AXIS"},
	{Number: "3158", Type: "AXIS"},
	{Number: "4570", Type: "AXIS"},
	{Number: "8821", Type: "AXIS"},
	{Number: "4477", Type: "AXIS"},
	{Number: "3258", Type: "IDFC"},
	{Number: "6853", Type: "IDFC"},
	{Number: "9112", Type: "IDFC"},
	{Number: "7775", Type: "IDFC"},
	{Number: "0027", Type: "IDFC"},
	{Number: "6486", Type: "IDFC"},
	{Number: "4245", Type: "IDFC"},
	{Number: "3875", Type: "IDFC"},
	{Number: "4557", Type: "IDFC"},
	{Number: "1047", Type: "IDFC"},
	{Number: "2134", Type: "IDFC"},
	{Number: "7907", Type: "IDFC"},
	{Number: "5139", Type: "INDUSIND"},
	{Number: "8156", Type: "INDUSIND"},
	{Number: "2941", Type: "INDUSIND"},
	{Number: "0081", Type: "INDUSIND"},
	{Number: "1413", Type: "INDUSIND"},
	{Number: "2897", Type: "INDUSIND"},
	{Number: "6669", Type: "INDUSIND"},
	{Number: "6289", Type: "INDUSIND"},
	{Number: "5205", Type: "INDUSIND"},
	{Number: "8600", Type: "INDUSIND"},
	{Number: "4247", Type: "INDUSIND"},
	{Number: "6655", Type: "INDUSIND"},
	{Number: "9031", Type: "INDUSIND"},
	{Number: "4831", Type: "INDUSIND"},
	{Number: "3197", Type: "INDUSIND"},
	{Number: "7145", Type: "INDUSIND"},
	{Number: "1324", Type: "INDUSIND"},
	{Number: "1314", Type: "INDUSIND"},
	{Number: "9575", Type: "INDUSIND"},
	{Number: "7172", Type: "INDUSIND"},
	{Number: "8834", Type: "INDUSIND"},
	{Number: "9436", Type: "RBL"},
	{Number: "1015", Type: "RBL"},
	{Number: "6809", Type: "RBL"},
	{Number: "0026", Type: "RBL"},
	{Number: "3160", Type: "RBL"},
	{Number: "3885", Type: "RBL"},
	{Number: "9820", Type: "RBL"},
	{Number: "1083", Type: "RBL"},
	{Number: "1924", Type: "RBL"},
	{Number: "9794", Type: "RBL"},
	{Number: "4907", Type: "RBL"},
	{Number: "3402", Type: "RBL"},
	{Number: "3477", Type: "RBL"},
	{Number: "0276", Type: "RBL"},
	{Number: "0344", Type: "RBL"},
	{Number: "9991", Type: "RBL"},
	{Number: "3860", Type: "RBL"},
	{Number: "8458", Type: "YES"},
	{Number: "7676", Type: "YES"},
	{Number: "2709", Type: "YES"},
	{Number: "2337", Type: "YES"},
	{Number: "8508", Type: "BOB"},
	{Number: "6509", Type: "BOB"},
	{Number: "4805", Type: "BOB"},
	{Number: "0870", Type: "BOB"},
	{Number: "6118", Type: "BOB"},
	{Number: "5397", Type: "BOB"},
	{Number: "2023", Type: "BOB"},
	{Number: "7613", Type: "BOB"},
	{Number: "6395", Type: "BOB"},
	{Number: "1401", Type: "BOB"},
	{Number: "0041", Type: "BOB"},
}
